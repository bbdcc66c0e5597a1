// Package render formats decode results as plain text for terminals.
package render

import (
	"errors"
	"fmt"
	"io"

	"egid/internal/nationalid"
	"egid/internal/nationalid/service"
)

// Result writes the decoded fields one per line.
func Result(w io.Writer, res *service.Result) error {
	b := res.Info.BirthDate
	_, err := fmt.Fprintf(w,
		"Gender: %s\nBirthdate: %02d/%02d/%04d\nGovernorate: %s\nAge: %d\n",
		res.Info.Gender, b.Day, b.Month, b.Year, res.Info.Governorate, res.Age,
	)
	return err
}

// Error writes the decoding failure message verbatim. Errors that did not
// come from decoding are reported generically.
func Error(w io.Writer, err error) error {
	msg := "unable to decode national ID"
	var de *nationalid.Error
	if errors.As(err, &de) {
		msg = de.Error()
	}
	_, werr := fmt.Fprintf(w, "Error: %s\n", msg)
	return werr
}
