// Command tt is a fast, snappy TickTick command line client.
//
// Task titles and search queries accept inline shorthand: !high/!medium/!low for priority, ~name for the
// target list, #name for tags, and free-text dates such as "tomorrow", "next week", "jun 3rd" or "6/01"
// when adding a task.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	ticktick "github.com/CarterT27/ticktick-cli"
)

const usage = `Usage: tt <command> [arguments]

Commands:
  auth login|logout|status
  task add|list|update|complete|delete
  project add|list|get|data|update|delete
  tag list

Run 'tt <command> <subcommand> --help' for options.`

var errNotAuthenticated = errors.New("not authenticated, run 'tt auth login' first")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "auth":
		err = runAuth(os.Args[2:])
	case "task":
		err = runTask(os.Args[2:])
	case "project":
		err = runProject(os.Args[2:])
	case "tag":
		err = runTag(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		fmt.Fprintf(os.Stderr, "tt: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// apiClient builds a client from the stored credentials. Set TT_WIRE_LOG to a file path to capture all
// API traffic.
func apiClient() (*ticktick.Client, error) {
	path, err := ticktick.ConfigPath()
	if err != nil {
		return nil, err
	}
	config, err := ticktick.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, errNotAuthenticated
	}
	if wireLog := os.Getenv("TT_WIRE_LOG"); wireLog != "" {
		return ticktick.NewClient(config.AccessToken, ticktick.WithWireLog(wireLog))
	}
	return ticktick.NewClient(config.AccessToken)
}

// stdinIsPiped reports whether something is being piped into the process.
func stdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// confirm prints a y/N prompt and reads one line from stdin. Only an explicit y answers yes.
func confirm(prompt string) (bool, error) {
	fmt.Println(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
