package static

/*
This file is generated! DO NOT EDIT
*/
var ShareFileModes = map[string]int{
	"cheat_sheet/cheat_sheet.json.tx": 420, /* 0644 */
	"fathead/README.md.tx":            420, /* 0644 */
	"fathead/fetch.sh.tx":             493, /* 0755 */
	"fathead/parse.sh.tx":             493, /* 0755 */
	"goodie/goodie.pm.tx":             420, /* 0644 */
	"goodie/goodie_test.t.tx":         420, /* 0644 */
	"spice/spice.js.tx":               420, /* 0644 */
	"spice/spice.pm.tx":               420, /* 0644 */
	"spice/spice_test.t.tx":           420, /* 0644 */
}
