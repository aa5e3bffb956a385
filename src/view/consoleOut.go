package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
)

// ConsoleOut prints the running configuration and the results to the plain console
type ConsoleOut struct {
	w         io.Writer
	au        aurora.Aurora
	startTime time.Time
}

func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors)}
}

// Start prints the configuration and starts the timer
func (c *ConsoleOut) Start(conf map[string]interface{}) {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, c.au.Cyan("Running configuration:"))
	c.printHashData(conf)
}

// Finish prints the results with the total running time
func (c *ConsoleOut) Finish(results map[string]interface{}) {
	resultData := make(map[string]interface{}, len(results)+1)
	for k, v := range results {
		resultData[k] = v
	}
	if !c.startTime.IsZero() {
		resultData["Total time"] = time.Since(c.startTime).Round(time.Millisecond)
	}
	_, _ = fmt.Fprintln(c.w, c.au.Cyan("Finished:"))
	c.printHashData(resultData)
}

// Error prints the diagnostic message
func (c *ConsoleOut) Error(err error) {
	_, _ = fmt.Fprintln(c.w, c.au.Red("ERROR:"))
	_, _ = fmt.Fprintln(c.w, err.Error())
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", c.au.Green(propName), d[propName])
	}
}
