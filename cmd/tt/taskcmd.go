package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	ticktick "github.com/CarterT27/ticktick-cli"
)

func runTask(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: tt task <add|list|update|complete|delete>")
	}
	switch args[0] {
	case "add", "new":
		return cmdTaskAdd(args[1:])
	case "list", "ls":
		return cmdTaskList(args[1:])
	case "update", "edit":
		return cmdTaskUpdate(args[1:])
	case "complete", "done":
		return cmdTaskComplete(args[1:])
	case "delete", "rm", "del":
		return cmdTaskDelete(args[1:])
	default:
		return fmt.Errorf("unknown task command %q", args[0])
	}
}

// resolveTaskProject finds the list a task-id command should address: an explicit project id wins, then a
// list name, then a scan across lists for the task itself.
func resolveTaskProject(client *ticktick.Client, taskID, projectID, listName string) (string, error) {
	if projectID != "" {
		return projectID, nil
	}
	if listName != "" {
		return client.ResolveListID(listName)
	}
	return client.FindTaskProject(taskID)
}

func cmdTaskAdd(args []string) error {
	flagSet := flag.NewFlagSet("task add", flag.ContinueOnError)
	content := flagSet.String("content", "", "Task content")
	desc := flagSet.String("desc", "", "Checklist description")
	projectID := flagSet.String("project-id", "", "Target project id")
	list := flagSet.String("list", "", "Target list name")
	startDate := flagSet.String("start-date", "", "Start date in API format")
	dueDate := flagSet.String("due-date", "", "Due date in API format")
	timeZone := flagSet.String("time-zone", "", "Time zone name")
	allDay := flagSet.Bool("all-day", false, "All-day task")
	priority := flagSet.Int("priority", 0, "Priority: 0 none, 1 low, 3 medium, 5 high")
	tags := flagSet.StringArray("tag", nil, "Tag (repeatable)")
	reminders := flagSet.StringArray("reminder", nil, "Reminder trigger (repeatable)")
	repeatFlag := flagSet.String("repeat-flag", "", "Recurrence rule")
	sortOrder := flagSet.Int64("sort-order", 0, "Sort order")
	useStdin := flagSet.Bool("stdin", false, "Read the title from standard input")
	output := flagSet.String("output", outputHuman, "Output format: human or json")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if err := validOutput(*output); err != nil {
		return err
	}

	raw := strings.Join(flagSet.Args(), " ")
	if *useStdin || (raw == "" && stdinIsPiped()) {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		raw = string(b)
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	// Date words are extracted from the raw input, before marker extraction throws temporal words into
	// the title. "pay rent 6/01 ~bills" gets a due date of June 1 and a title of "pay rent".
	today := ticktick.DateOf(time.Now())
	cleaned, inferredDue, haveDue := ticktick.ExtractDueDate(raw, today)
	shorthand := ticktick.ExtractShorthand(cleaned, false)

	title := strings.TrimSpace(strings.Join(shorthand.Terms, " "))
	if title == "" {
		return errors.New("task title required (or provide stdin)")
	}

	task := ticktick.Task{
		Title:      title,
		Content:    *content,
		Desc:       *desc,
		StartDate:  *startDate,
		DueDate:    *dueDate,
		TimeZone:   *timeZone,
		RepeatFlag: *repeatFlag,
		Reminders:  *reminders,
		Kind:       "TASK",
	}

	switch {
	case flagSet.Changed("priority"):
		task.Priority = priority
	case shorthand.Priority != nil:
		task.Priority = shorthand.Priority
	default:
		none := 0
		task.Priority = &none
	}
	if flagSet.Changed("sort-order") {
		task.SortOrder = sortOrder
	}
	if flagSet.Changed("all-day") {
		task.IsAllDay = allDay
	}

	if task.DueDate == "" && haveDue {
		formatted := ticktick.FormatDueDate(inferredDue, time.Local)
		task.DueDate = formatted
		if task.StartDate == "" {
			task.StartDate = formatted
		}
		if task.IsAllDay == nil {
			wholeDay := true
			task.IsAllDay = &wholeDay
		}
	}

	task.Tags = ticktick.MergeTags(*tags, shorthand.Tags)

	listName := *list
	if listName == "" {
		listName = shorthand.List
	}
	switch {
	case *projectID != "":
		task.ProjectID = *projectID
	case listName != "":
		task.ProjectID, err = client.ResolveListID(listName)
		if err != nil {
			return err
		}
	default:
		task.ProjectID, err = client.DefaultProjectID()
		if err != nil {
			return err
		}
	}

	created, err := client.CreateTask(&task)
	if err != nil {
		return err
	}

	if *output == outputJSON {
		return printJSON(os.Stdout, created)
	}
	fmt.Println("Task created:", created.Title)
	fmt.Println("ID:", created.ID)
	return nil
}

func cmdTaskList(args []string) error {
	flagSet := flag.NewFlagSet("task list", flag.ContinueOnError)
	projectID := flagSet.String("project-id", "", "Only this project id")
	list := flagSet.String("list", "", "Only this list name")
	status := flagSet.String("status", "", "Filter by status: done or todo")
	priority := flagSet.Int("priority", 0, "Filter by exact priority")
	tags := flagSet.StringArray("tag", nil, "Require tag (repeatable)")
	when := flagSet.String("when", "", "Filter by date window: today, tomorrow or week")
	limit := flagSet.Int("limit", 0, "Maximum number of tasks to print (0 = all)")
	output := flagSet.String("output", outputHuman, "Output format: human or json")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if err := validOutput(*output); err != nil {
		return err
	}

	// The positional query accepts the same shorthand as task add; here a bare "today" is a filter
	// window, not a date to strip.
	shorthand := ticktick.ExtractShorthand(strings.Join(flagSet.Args(), " "), true)

	whenFilter := shorthand.When
	if *when != "" {
		parsed, ok := ticktick.ParseWhenFilter(*when)
		if !ok {
			return fmt.Errorf("unsupported when filter %q, use today, tomorrow or week", *when)
		}
		whenFilter = parsed
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	listName := *list
	if *projectID == "" && listName == "" {
		listName = shorthand.List
	}

	var tasks []ticktick.Task
	switch {
	case *projectID != "":
		tasks, err = client.ProjectTasks(*projectID)
	case listName != "":
		var id string
		if id, err = client.ResolveListID(listName); err == nil {
			tasks, err = client.ProjectTasks(id)
		}
	default:
		tasks, err = client.AllTasks()
	}
	if err != nil {
		return err
	}

	scan := ticktick.ScanTasks(tasks)
	if *status != "" {
		switch strings.ToLower(*status) {
		case "done", "completed", "complete":
			scan.WithCompleted(true)
		case "todo", "open", "normal", "active":
			scan.WithCompleted(false)
		default:
			return fmt.Errorf("unsupported status %q, use one of: done, completed, todo, open", *status)
		}
	}
	switch {
	case flagSet.Changed("priority"):
		scan.WithPriority(*priority)
	case shorthand.Priority != nil:
		scan.WithPriority(*shorthand.Priority)
	}
	if required := ticktick.MergeTags(*tags, shorthand.Tags); len(required) > 0 {
		scan.WithTags(required...)
	}
	if whenFilter != ticktick.WhenNone {
		scan.WithWhen(whenFilter, ticktick.DateOf(time.Now()))
	}
	if len(shorthand.Terms) > 0 {
		scan.WithTerms(shorthand.Terms...)
	}

	results := scan.Results()
	if *limit > 0 && len(results) > *limit {
		results = results[:*limit]
	}
	return printTasks(os.Stdout, results, *output)
}

func cmdTaskUpdate(args []string) error {
	flagSet := flag.NewFlagSet("task update", flag.ContinueOnError)
	projectID := flagSet.String("project-id", "", "Project id containing the task")
	list := flagSet.String("list", "", "List name containing the task")
	title := flagSet.String("title", "", "New title")
	content := flagSet.String("content", "", "New content")
	desc := flagSet.String("desc", "", "New checklist description")
	startDate := flagSet.String("start-date", "", "New start date in API format")
	dueDate := flagSet.String("due-date", "", "New due date in API format")
	timeZone := flagSet.String("time-zone", "", "New time zone name")
	priority := flagSet.Int("priority", 0, "New priority")
	tags := flagSet.StringArray("tag", nil, "Additional tag (repeatable)")
	reminders := flagSet.StringArray("reminder", nil, "Replacement reminders (repeatable)")
	repeatFlag := flagSet.String("repeat-flag", "", "New recurrence rule")
	sortOrder := flagSet.Int64("sort-order", 0, "New sort order")
	output := flagSet.String("output", outputHuman, "Output format: human or json")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if err := validOutput(*output); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.New("usage: tt task update <task-id> [options]")
	}
	taskID := flagSet.Arg(0)

	client, err := apiClient()
	if err != nil {
		return err
	}
	resolvedProject, err := resolveTaskProject(client, taskID, *projectID, *list)
	if err != nil {
		return err
	}

	task, err := client.Task(resolvedProject, taskID)
	if err != nil {
		return err
	}

	if flagSet.Changed("title") {
		task.Title = *title
	}
	if flagSet.Changed("content") {
		task.Content = *content
	}
	if flagSet.Changed("desc") {
		task.Desc = *desc
	}
	if flagSet.Changed("start-date") {
		task.StartDate = *startDate
	}
	if flagSet.Changed("due-date") {
		task.DueDate = *dueDate
	}
	if flagSet.Changed("time-zone") {
		task.TimeZone = *timeZone
	}
	if flagSet.Changed("priority") {
		task.Priority = priority
	}
	if len(*tags) > 0 {
		task.Tags = ticktick.MergeTags(task.Tags, *tags)
	}
	if len(*reminders) > 0 {
		task.Reminders = *reminders
	}
	if flagSet.Changed("repeat-flag") {
		task.RepeatFlag = *repeatFlag
	}
	if flagSet.Changed("sort-order") {
		task.SortOrder = sortOrder
	}

	updated, err := client.UpdateTask(taskID, task)
	if err != nil {
		return err
	}

	if *output == outputJSON {
		return printJSON(os.Stdout, updated)
	}
	fmt.Println("Task updated:", updated.Title)
	return nil
}

func cmdTaskComplete(args []string) error {
	flagSet := flag.NewFlagSet("task complete", flag.ContinueOnError)
	projectID := flagSet.String("project-id", "", "Project id containing the task")
	list := flagSet.String("list", "", "List name containing the task")
	quiet := flagSet.Bool("quiet", false, "Print nothing on success")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.New("usage: tt task complete <task-id>")
	}
	taskID := flagSet.Arg(0)

	client, err := apiClient()
	if err != nil {
		return err
	}
	resolvedProject, err := resolveTaskProject(client, taskID, *projectID, *list)
	if err != nil {
		return err
	}
	if err := client.CompleteTask(resolvedProject, taskID); err != nil {
		return err
	}
	if !*quiet {
		fmt.Println("Task completed:", taskID)
	}
	return nil
}

func cmdTaskDelete(args []string) error {
	flagSet := flag.NewFlagSet("task delete", flag.ContinueOnError)
	projectID := flagSet.String("project-id", "", "Project id containing the task")
	list := flagSet.String("list", "", "List name containing the task")
	yes := flagSet.Bool("yes", false, "Skip the confirmation prompt")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.New("usage: tt task delete <task-id>")
	}
	taskID := flagSet.Arg(0)

	client, err := apiClient()
	if err != nil {
		return err
	}
	resolvedProject, err := resolveTaskProject(client, taskID, *projectID, *list)
	if err != nil {
		return err
	}

	if !*yes {
		ok, err := confirm(fmt.Sprintf("Are you sure you want to delete task '%s'? [y/N]", taskID))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := client.DeleteTask(resolvedProject, taskID); err != nil {
		return err
	}
	fmt.Println("Task deleted:", taskID)
	return nil
}
