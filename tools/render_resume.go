package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Renders a resume JSON file to a standalone HTML document, for eyeballing
// template output without running the server.
func main() {
	in := flag.String("in", "resume.json", "resume data JSON file")
	out := flag.String("out", "resume.html", "output HTML file")
	tmpl := flag.String("template", render.DefaultTemplate, "template name")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
		os.Exit(2)
	}
	var data model.ResumeData
	if err := json.Unmarshal(b, &data); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	html, err := render.Document(data, *tmpl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}
