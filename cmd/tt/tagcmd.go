package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	ticktick "github.com/CarterT27/ticktick-cli"
)

// TickTick's open API has no tag endpoint; tags are collected from the
// tasks that carry them.
func runTag(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: tt tag <list>")
	}
	switch args[0] {
	case "list", "ls":
		return cmdTagList(args[1:])
	default:
		return fmt.Errorf("unknown tag command %q", args[0])
	}
}

func cmdTagList(args []string) error {
	flagSet := flag.NewFlagSet("tag list", flag.ContinueOnError)
	contains := flagSet.String("contains", "", "Only tags containing this substring")
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
	tasks, err := client.AllTasks()
	if err != nil {
		return err
	}

	var merged []string
	for i := range tasks {
		merged = ticktick.MergeTags(merged, tasks[i].Tags)
	}

	if *contains != "" {
		needle := strings.ToLower(*contains)
		filtered := merged[:0]
		for _, tag := range merged {
			if strings.Contains(strings.ToLower(tag), needle) {
				filtered = append(filtered, tag)
			}
		}
		merged = filtered
	}

	return printTags(os.Stdout, merged, *output)
}
