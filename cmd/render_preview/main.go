// Dev tool: renders a snapshot JSON file to the preview HTML, or to a
// PDF when -pdf is given.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"cv-builder/internal/model"
	"cv-builder/internal/usecase"
	infra "cv-builder/pkg/infrastructure"
)

func main() {
	pdfOut := flag.String("pdf", "", "write a PDF to this path instead of printing HTML")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: render_preview [-pdf out.pdf] <snapshot.json>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read snapshot: %v", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Fatalf("decode snapshot: %v", err)
	}

	if *pdfOut == "" {
		html, err := usecase.RenderPreview(snap)
		if err != nil {
			log.Fatalf("render preview: %v", err)
		}
		fmt.Print(html)
		return
	}

	exporter := usecase.NewExporter(infra.NewChromedpRenderer())
	pdf, filename, err := exporter.Export(context.Background(), snap)
	if err != nil {
		log.Fatalf("render pdf: %v", err)
	}
	if err := os.WriteFile(*pdfOut, pdf, 0o644); err != nil {
		log.Fatalf("write pdf: %v", err)
	}
	log.Printf("wrote %s (%d bytes, download name %s)", *pdfOut, len(pdf), filename)
}
