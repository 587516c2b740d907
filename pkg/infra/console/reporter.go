package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/relhook/pkg/domain/model"
)

// Reporter writes delivery progress to stdout and failures to stderr
type Reporter struct {
	out    io.Writer
	errOut io.Writer

	label   *color.Color
	success *color.Color
	failure *color.Color
}

// NewReporter creates a Reporter. Colors are forced on or off by colored.
func NewReporter(out, errOut io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:     out,
		errOut:  errOut,
		label:   color.New(color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{r.label, r.success, r.failure} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

func (r *Reporter) Sending(url string) {
	fmt.Fprintln(r.out, r.label.Sprint("Sending payload to"), url)
}

func (r *Reporter) Signature(sig string) {
	fmt.Fprintln(r.out, r.label.Sprint("X-Hub-Signature:"), sig)
}

func (r *Reporter) Response(resp *model.HookResponse) {
	status := r.success
	if resp.Rejected() {
		status = r.failure
	}
	fmt.Fprintln(r.out, r.label.Sprint("Response status:"), status.Sprint(resp.StatusCode))

	if len(resp.Body) > 0 {
		fmt.Fprintln(r.out, r.label.Sprint("Response body:"), string(resp.Body))
	}
}

func (r *Reporter) Failure(err error) {
	fmt.Fprintln(r.errOut, r.failure.Sprint("Request error:"), err.Error())
}
