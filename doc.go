// The ticktick package contains a TickTick client for the Open API v1 documented at
// https://developer.ticktick.com/docs, together with the text-processing helpers the cmd/tt command line
// tool is built on: shorthand parsing of task titles and search queries (!priority, ~list and #tag
// markers), recognition of embedded due-date expressions ("tomorrow", "next week", "jun 3rd"), relative
// date windows for filtering ("today", "this week"), and the flexible parsing of the several date
// encodings TickTick stores on a task.
//
// The API surface is small and request/response shaped: methods such as Projects, CreateTask or
// CompleteTask each map to one HTTP call. Everything else in the package is pure computation over
// caller-supplied strings and a caller-supplied reference date; no helper reads the system clock, so all
// of the date inference is deterministic and trivially safe for concurrent use.
package ticktick // import "github.com/CarterT27/ticktick-cli"
