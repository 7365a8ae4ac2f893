package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	ticktick "github.com/CarterT27/ticktick-cli"
)

func runProject(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: tt project <add|list|get|data|update|delete>")
	}
	switch args[0] {
	case "add", "new":
		return cmdProjectAdd(args[1:])
	case "list", "ls":
		return cmdProjectList(args[1:])
	case "get":
		return cmdProjectGet(args[1:])
	case "data":
		return cmdProjectData(args[1:])
	case "update", "edit":
		return cmdProjectUpdate(args[1:])
	case "delete", "rm", "del":
		return cmdProjectDelete(args[1:])
	default:
		return fmt.Errorf("unknown project command %q", args[0])
	}
}

func cmdProjectAdd(args []string) error {
	flagSet := flag.NewFlagSet("project add", flag.ContinueOnError)
	color := flagSet.String("color", "", "List color, e.g. #F18181")
	viewMode := flagSet.String("view-mode", "", "View mode: list, kanban or timeline")
	kind := flagSet.String("kind", "", "Kind: TASK or NOTE")
	groupID := flagSet.String("group-id", "", "Folder id")
	output := flagSet.String("output", outputHuman, "Output format: human or json")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if err := validOutput(*output); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.New("usage: tt project add <name> [options]")
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	project := ticktick.Project{
		Name:     flagSet.Arg(0),
		Color:    *color,
		ViewMode: *viewMode,
		Kind:     *kind,
		GroupID:  *groupID,
	}
	created, err := client.CreateProject(&project)
	if err != nil {
		return err
	}

	if *output == outputJSON {
		return printJSON(os.Stdout, created)
	}
	fmt.Println("Project created:", created.Name)
	fmt.Println("ID:", created.ID)
	return nil
}

func cmdProjectList(args []string) error {
	flagSet := flag.NewFlagSet("project list", flag.ContinueOnError)
	name := flagSet.String("name", "", "Only lists whose name contains this")
	output := flagSet.String("output", outputHuman, "Output format: human or json")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if err := validOutput(*output); err != nil {
		return err
	}

	client, err := apiClient()
	if err != nil {
		return err
	}
	projects, err := client.Projects()
	if err != nil {
		return err
	}

	if *name != "" {
		filtered := projects[:0]
		for i := range projects {
			if strings.Contains(projects[i].Name, *name) {
				filtered = append(filtered, projects[i])
			}
		}
		projects = filtered
	}

	return printProjects(os.Stdout, projects, *output)
}

func cmdProjectGet(args []string) error {
	flagSet := flag.NewFlagSet("project get", flag.ContinueOnError)
	output := flagSet.String("output", outputHuman, "Output format: human or json")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if err := validOutput(*output); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.New("usage: tt project get <project-id>")
	}

	client, err := apiClient()
	if err != nil {
		return err
	}
	project, err := client.Project(flagSet.Arg(0))
	if err != nil {
		return err
	}

	if *output == outputJSON {
		return printJSON(os.Stdout, project)
	}
	fmt.Println("Project:", project.Name)
	fmt.Println("ID:", project.ID)
	return nil
}

func cmdProjectData(args []string) error {
	flagSet := flag.NewFlagSet("project data", flag.ContinueOnError)
	output := flagSet.String("output", outputHuman, "Output format: human or json")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if err := validOutput(*output); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.New("usage: tt project data <project-id>")
	}

	client, err := apiClient()
	if err != nil {
		return err
	}
	data, err := client.ProjectData(flagSet.Arg(0))
	if err != nil {
		return err
	}

	if *output == outputJSON {
		return printJSON(os.Stdout, data)
	}
	fmt.Println("Project:", data.Project.Name)
	fmt.Println("Tasks:", len(data.Tasks))
	fmt.Println("Columns:", len(data.Columns))
	return nil
}

func cmdProjectUpdate(args []string) error {
	flagSet := flag.NewFlagSet("project update", flag.ContinueOnError)
	name := flagSet.String("name", "", "New name")
	color := flagSet.String("color", "", "New color")
	viewMode := flagSet.String("view-mode", "", "New view mode")
	kind := flagSet.String("kind", "", "New kind")
	sortOrder := flagSet.Int64("sort-order", 0, "New sort order")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.New("usage: tt project update <project-id> [options]")
	}
	projectID := flagSet.Arg(0)

	client, err := apiClient()
	if err != nil {
		return err
	}
	project, err := client.Project(projectID)
	if err != nil {
		return err
	}

	if flagSet.Changed("name") {
		project.Name = *name
	}
	if flagSet.Changed("color") {
		project.Color = *color
	}
	if flagSet.Changed("view-mode") {
		project.ViewMode = *viewMode
	}
	if flagSet.Changed("kind") {
		project.Kind = *kind
	}
	if flagSet.Changed("sort-order") {
		project.SortOrder = sortOrder
	}
	project.ID = projectID

	updated, err := client.UpdateProject(projectID, project)
	if err != nil {
		return err
	}
	fmt.Println("Project updated:", updated.Name)
	return nil
}

func cmdProjectDelete(args []string) error {
	flagSet := flag.NewFlagSet("project delete", flag.ContinueOnError)
	yes := flagSet.Bool("yes", false, "Skip the confirmation prompt")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.New("usage: tt project delete <project-id>")
	}
	projectID := flagSet.Arg(0)

	client, err := apiClient()
	if err != nil {
		return err
	}
	project, err := client.Project(projectID)
	if err != nil {
		return err
	}

	if !*yes {
		ok, err := confirm(fmt.Sprintf("Are you sure you want to delete project '%s'? [y/N]", project.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := client.DeleteProject(projectID); err != nil {
		return err
	}
	fmt.Println("Project deleted:", project.Name)
	return nil
}
