package quiz

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/scores"
)

// tableStyles returns leaderboard table styles.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// boardColumns defines the leaderboard table layout.
func boardColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: scores.MaxNameLength + 2},
		{Title: "Score", Width: 8},
	}
}

// boardRows converts leaderboard records into table rows.
func boardRows(board []scores.Record) []table.Row {
	rows := make([]table.Row, 0, len(board))
	for i, record := range board {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			record.Name,
			fmt.Sprintf("%d/%d", record.Score, record.Total),
		})
	}
	return rows
}
