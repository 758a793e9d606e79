package main

// Render a sample resume to HTML (and optionally PDF) on disk:
//   go run ./cmd/renderdemo -out ./out -pdf

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/export"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	tpl "resume-builder/resume/template"
)

func main() {
	outDir := flag.String("out", "./out", "output directory")
	templateID := flag.String("template", tpl.IDOne, "template id (one..five)")
	pdf := flag.Bool("pdf", false, "also serialize a PDF via headless Chrome")
	flag.Parse()

	record := model.Normalize(sampleResume(*templateID))
	layout := tpl.Lookup(*templateID)
	palette := tpl.ResolvePalette(*templateID, record.ColorPalette)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	body, err := render.HTML(record, layout, palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
	htmlPath := filepath.Join(*outDir, "sample_resume.html")
	page := "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"></head><body>" + body + "</body></html>\n"
	if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s\n", htmlPath)

	if !*pdf {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	exporter := &export.Exporter{
		Serializer: export.NewChromeSerializer(strings.TrimSpace(os.Getenv("CHROME_PATH"))),
	}
	result, err := exporter.GeneratePDF(ctx, record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdf failed after %d attempts: %v\n", result.Attempts, err)
		os.Exit(1)
	}

	pdfPath := filepath.Join(*outDir, "sample_resume.pdf")
	if err := os.WriteFile(pdfPath, result.PDF, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s (%d bytes, %d pages, %d attempts)\n", pdfPath, len(result.PDF), result.Pages, result.Attempts)
}

func sampleResume(templateID string) model.Resume {
	return model.Resume{
		Title:    "Jordan Lee - Backend Engineer",
		Template: templateID,
		ProfileInfo: model.ProfileInfo{
			FullName:    "Jordan Lee",
			Designation: "Senior Backend Engineer",
			Summary:     "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		},
		ContactInfo: model.ContactInfo{
			Email:    "jordan.lee@example.com",
			Phone:    "+1-555-0102",
			Location: "Austin, TX",
			LinkedIn: "https://www.linkedin.com/in/jordanlee",
			GitHub:   "https://github.com/jordanlee",
		},
		WorkExperiences: []model.WorkExperience{
			{
				Company:     "Acme Logistics",
				Role:        "Senior Backend Engineer",
				StartDate:   "2021-04",
				Description: "Designed a routing service that reduced shipment latency by 18%. Implemented distributed tracing to cut incident triage time by 35%.",
			},
			{
				Company:     "Blue Harbor Systems",
				Role:        "Backend Engineer",
				StartDate:   "2018-01",
				EndDate:     "2021-03",
				Description: "Built event-driven ingestion pipelines for compliance data feeds.",
			},
		},
		Education: []model.Education{
			{Degree: "B.S. Computer Science", Institution: "University of Texas at Austin", StartDate: "2012", EndDate: "2016"},
		},
		Skills: []model.Rated{
			{Name: "Go", Proficiency: 5},
			{Name: "PostgreSQL", Proficiency: 4},
			{Name: "Kubernetes", Proficiency: 3},
		},
		Languages: []model.Rated{
			{Name: "English", Proficiency: 5},
			{Name: "Spanish", Proficiency: 3},
		},
		Projects: []model.Project{
			{
				Title:       "Tracer",
				Description: "Lightweight request tracing toolkit for Gin services.",
				GitHub:      "https://github.com/jordanlee/tracer",
			},
		},
		Certifications: []model.Certification{
			{Title: "AWS Solutions Architect Associate", Issuer: "Amazon Web Services", Year: "2022"},
		},
		Interests: []model.Interest{{Name: "Cycling"}, {Name: "Homelab"}},
	}
}
