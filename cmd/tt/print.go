package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	ticktick "github.com/CarterT27/ticktick-cli"
)

const (
	outputHuman = "human"
	outputJSON  = "json"
)

func validOutput(format string) error {
	if format != outputHuman && format != outputJSON {
		return fmt.Errorf("unsupported output %q, use human or json", format)
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// stdoutIsTerminal decides between the aligned table and plain pipe-friendly lines.
func stdoutIsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// renderTable prints an aligned table. Cell widths are measured with runewidth, so wide runes and emoji
// in titles and list names don't break the columns.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No items found.")
		return
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	pad := func(cell string, width int) string {
		return cell + strings.Repeat(" ", width-runewidth.StringWidth(cell))
	}

	headerCells := make([]string, len(headers))
	separators := make([]string, len(headers))
	for i, header := range headers {
		headerCells[i] = " " + pad(header, widths[i]) + " "
		separators[i] = strings.Repeat("-", widths[i]+2)
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(headerCells, "|"))
	fmt.Fprintf(w, "|%s|\n", strings.Join(separators, "+"))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = " " + pad(cell, widths[i]) + " "
		}
		fmt.Fprintf(w, "|%s|\n", strings.Join(cells, "|"))
	}
}

func priorityLabel(priority int) string {
	switch priority {
	case 0:
		return ""
	case 1:
		return "Low"
	case 3:
		return "Medium"
	case 5:
		return "High"
	default:
		return strconv.Itoa(priority)
	}
}

// dueLabel shows just the date part of the stored due date.
func dueLabel(t *ticktick.Task) string {
	due, _, _ := strings.Cut(t.DueDate, "T")
	return due
}

func printTasks(w io.Writer, tasks []ticktick.Task, format string) error {
	if format == outputJSON {
		return printJSON(w, tasks)
	}
	if !stdoutIsTerminal() {
		for i := range tasks {
			fmt.Fprintf(w, "%s|%s\n", tasks[i].ID, tasks[i].Title)
		}
		return nil
	}
	rows := make([][]string, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		rows[i] = []string{t.ID, t.Title, priorityLabel(t.PriorityValue()), dueLabel(t)}
	}
	renderTable(w, []string{"ID", "Title", "Priority", "Due"}, rows)
	return nil
}

func printProjects(w io.Writer, projects []ticktick.Project, format string) error {
	if format == outputJSON {
		return printJSON(w, projects)
	}
	if !stdoutIsTerminal() {
		for i := range projects {
			fmt.Fprintf(w, "%s|%s\n", projects[i].ID, projects[i].Name)
		}
		return nil
	}
	rows := make([][]string, len(projects))
	for i := range projects {
		p := &projects[i]
		id := p.ID
		if len(id) > 8 {
			id = id[:8] + "..."
		}
		rows[i] = []string{id, p.Name, p.Color, p.ViewMode}
	}
	renderTable(w, []string{"ID", "Name", "Color", "View"}, rows)
	return nil
}

func printTags(w io.Writer, tags []string, format string) error {
	if format == outputJSON {
		return printJSON(w, tags)
	}
	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags found.")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintf(w, "#%s\n", tag)
	}
	return nil
}
