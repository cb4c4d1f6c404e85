package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"github.com/sohagbhuiyan/portfolio-api/pkg/contactform"
	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/spf13/cobra"
)

const defaultEndpoint = "http://localhost:8080/api/contact"

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Validate the fields and submit them",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint, _ := cmd.Flags().GetString("endpoint")       //nolint:errcheck
		timeout, _ := cmd.Flags().GetDuration("timeout")       //nolint:errcheck
		fallback, _ := cmd.Flags().GetString("fallback-email") //nolint:errcheck

		form := contactform.NewController(endpoint, httpclient.NewStandardClient(timeout),
			contactform.WithFallbackEmail(fallback))
		return runSend(cmd.Context(), cmd.OutOrStdout(), form, fieldsFromFlags(cmd))
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the fields without sending anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := fieldsFromFlags(cmd)
		errs := contactform.Validate(f.Name, f.Email, f.Message)
		out := termenv.NewOutput(cmd.OutOrStdout())
		if len(errs) > 0 {
			printFieldErrors(out, errs)
			return contactform.ErrInvalid
		}
		fmt.Fprintln(out, out.String("All fields are valid").Foreground(out.Color("2")))
		return nil
	},
}

func init() {
	sendCmd.Flags().String("endpoint", defaultEndpoint, "Submission endpoint URL")
	sendCmd.Flags().Duration("timeout", 0, "Request timeout (0 keeps the transport default)")
	sendCmd.Flags().String("fallback-email", contactform.DefaultFallbackEmail, "Address suggested when sending fails")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(checkCmd)
}

func fieldsFromFlags(cmd *cobra.Command) contactform.Fields {
	name, _ := cmd.Flags().GetString("name")       //nolint:errcheck
	email, _ := cmd.Flags().GetString("email")     //nolint:errcheck
	message, _ := cmd.Flags().GetString("message") //nolint:errcheck
	return contactform.Fields{Name: name, Email: email, Message: message}
}

// runSend fills form with f, submits once and prints each status change.
func runSend(ctx context.Context, w io.Writer, form *contactform.Controller, f contactform.Fields) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := termenv.NewOutput(w)

	form.SetName(f.Name)
	form.SetEmail(f.Email)
	form.SetMessage(f.Message)

	start := time.Now()
	unsubscribe := form.Subscribe(func(s contactform.Snapshot) {
		printBanner(out, s)
	})
	defer unsubscribe()

	err := form.Submit(ctx)
	if errors.Is(err, contactform.ErrInvalid) {
		printFieldErrors(out, form.Snapshot().Errors)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, out.String(fmt.Sprintf("Done in %s", time.Since(start).Round(time.Millisecond))).Faint())
	return nil
}

func printBanner(out *termenv.Output, s contactform.Snapshot) {
	text := contactform.Banner(s)
	if text == "" {
		return
	}

	style := out.String(text)
	switch s.Status.Kind() {
	case contactform.KindSuccess:
		style = style.Foreground(out.Color("2"))
	case contactform.KindError:
		style = style.Foreground(out.Color("1"))
	default:
		style = style.Faint()
	}
	fmt.Fprintln(out, style)
}

func printFieldErrors(out *termenv.Output, errs contactform.FieldErrors) {
	for _, field := range []contactform.Field{contactform.FieldName, contactform.FieldEmail, contactform.FieldMessage} {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(out, "%s %s\n", out.String(string(field)+":").Bold(), out.String(msg).Foreground(out.Color("1")))
		}
	}
}
