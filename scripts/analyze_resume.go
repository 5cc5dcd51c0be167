package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"alfredoptarigan/resume-checker/internal/config"
	"alfredoptarigan/resume-checker/internal/models"
	"alfredoptarigan/resume-checker/internal/services"
)

func main() {
	analysisType := flag.String("type", string(models.DefaultAnalysisMode), "analysis type: Quick Scan, Detailed Analysis or ATS Optimization")
	jobFile := flag.String("job", "", "optional path to a plain text job description")
	run := flag.Bool("analyze", false, "analyze each resume with Gemini instead of printing its text")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] resume.pdf [more.pdf ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	mode, err := models.ParseAnalysisMode(*analysisType)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	var jobDescription string
	if *jobFile != "" {
		raw, err := os.ReadFile(*jobFile)
		if err != nil {
			log.Fatalf("❌ Failed to read job description: %v", err)
		}
		jobDescription = strings.TrimSpace(string(raw))
	}

	pdfParser := services.NewPDFParserService()

	var analyzer services.ResumeAnalyzer
	if *run {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			log.Fatalf("❌ Invalid configuration: %v", err)
		}

		geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini, nil)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini: %v", err)
		}
		analyzer = services.NewResumeAnalyzer(pdfParser, geminiService)
	}

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for _, path := range flag.Args() {
		log.Printf("\n📄 Processing: %s", path)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}

		if analyzer != nil {
			// Analyze extracts the text itself.
			log.Printf("   🤖 Running %s...", mode)
			analysis, err := analyzer.Analyze(ctx, services.AnalyzeInput{
				PDF:            data,
				Mode:           mode,
				JobDescription: jobDescription,
			})
			if err != nil {
				log.Printf("   ❌ Analysis failed: %v", err)
				failCount++
				continue
			}

			fmt.Println(analysis)
			successCount++
			continue
		}

		log.Printf("   📖 Extracting text...")
		content, err := pdfParser.ExtractTextWithMetaData(data)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		cleaned := services.CleanText(content.Text)
		log.Printf("   ✅ Extracted %d pages, %d characters (%d after cleanup)", content.PageCount, len(content.Text), len(cleaned))

		fmt.Println(cleaned)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Summary:")
	log.Printf("   ✅ Successful: %d resumes", successCount)
	log.Printf("   ❌ Failed: %d resumes", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
