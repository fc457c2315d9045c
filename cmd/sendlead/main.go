// sendlead submits a contact lead through the client package, exercising
// the full submission pipeline against a running server. Useful for
// smoke-testing a deployment without touching the browser form.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"mvp_studio_go/client"
)

func main() {
	var (
		url   = flag.String("url", "http://localhost:8080/api/contact", "contact endpoint URL")
		name  = flag.String("name", "", "full name")
		email = flag.String("email", "", "email address")
		phone = flag.String("phone", "", "phone number")
		desc  = flag.String("desc", "", "project description (min 20 characters)")
	)
	flag.Parse()

	form := client.NewForm(*url)
	form.SetField("fullName", *name)
	form.SetField("email", *email)
	form.SetField("phone", *phone)
	form.SetField("projectDescription", *desc)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := form.Submit(ctx)
	if err != nil {
		if errors.Is(err, client.ErrValidation) {
			fmt.Fprintln(os.Stderr, "Invalid submission:")
			for field, msg := range form.FieldErrors() {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Submission failed: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("%s", result.Message)
	if result.EmailID != "" {
		fmt.Printf(" (email ID: %s)", result.EmailID)
	}
	fmt.Println()
}
