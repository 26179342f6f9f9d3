package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/ui"
)

func RenderClientList(clients []*model.Client) error {
	if len(clients) == 0 {
		pterm.Warning.Println("No clients yet")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Phone"}}
	for _, c := range clients {
		phone := c.Phone
		if phone == "" {
			phone = "-"
		}
		tableData = append(tableData, []string{fmt.Sprintf("%d", c.ID), c.Name, phone})
	}

	pterm.DefaultSection.Printf("Clients")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d clients\n", len(clients))
	return nil
}

func RenderClientSuccess(c *model.Client) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Client ID"), fmt.Sprintf("%d", c.ID)},
		{pterm.Blue("Name"), c.Name},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Client created successfully!\n")
	return nil
}
