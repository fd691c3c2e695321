package list

import (
	"fmt"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/zeroclickinfo/duckgen/cli/scaffold"
)

// ListSets shows built-in template sets and the templates they generate.
func ListSets() error {
	sets, err := scaffold.Inventory()
	if err != nil {
		return fmt.Errorf("can't collect template sets: %s", err)
	}

	fmt.Println("List of template sets:")

	for _, set := range sets {
		log.Infof("%s: %s", color.GreenString(set.Name), set.Label)
		for _, tmpl := range set.Templates {
			fmt.Printf("	%s\n", color.YellowString(tmpl.Name))
		}
	}

	return nil
}

// templatesTable renders templates as a table.
func templatesTable(templates []scaffold.TemplateInfo) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"TEMPLATE", "DESCRIPTION", "OUTPUT DIR", "MODE"})

	for _, tmpl := range templates {
		tw.AppendRow(table.Row{tmpl.Name, tmpl.Label, tmpl.OutputDir,
			fmt.Sprintf("%04o", tmpl.Mode)})
	}

	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateHeader = false
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// ListTemplates shows all templates with their output locations and modes.
func ListTemplates() error {
	templates, err := scaffold.TemplateInventory()
	if err != nil {
		return fmt.Errorf("can't collect templates: %s", err)
	}

	fmt.Println(templatesTable(templates))

	return nil
}
