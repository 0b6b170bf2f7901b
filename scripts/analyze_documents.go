package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"resumehub/resume-matcher/internal/analysis"
	"resumehub/resume-matcher/internal/config"
	"resumehub/resume-matcher/internal/extract"
)

// contentTypeByExt maps file extensions to the declared media types the
// extractor dispatches on. The HTTP surface gets the type from the
// client; here the extension has to stand in for it.
var contentTypeByExt = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tiff": "image/tiff",
	".bmp":  "image/bmp",
}

func main() {
	dir := flag.String("dir", "./resumes", "directory of resume files to analyze")
	jobFile := flag.String("job", "", "optional job description text file to rank against")
	flag.Parse()

	log.Println("🚀 Starting batch resume analysis...")

	cfg := config.Load()
	extractor := extract.NewExtractor(cfg.OCR.Language)

	var jobDescription string
	if *jobFile != "" {
		data, err := os.ReadFile(*jobFile)
		if err != nil {
			log.Fatalf("❌ Failed to read job description: %v", err)
		}
		jobDescription = string(data)
		log.Printf("📋 Ranking against job description (%d characters)", len(jobDescription))
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("❌ Failed to read directory %s: %v", *dir, err)
	}

	type scored struct {
		name  string
		score float64
	}

	var ranking []scored
	successCount := 0
	failCount := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		contentType, ok := contentTypeByExt[strings.ToLower(filepath.Ext(name))]
		if !ok {
			log.Printf("⚠️  Skipping %s: unsupported extension", name)
			continue
		}

		path := filepath.Join(*dir, name)
		log.Printf("\n📄 Processing: %s", name)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}

		text, err := extractor.ExtractText(data, contentType)
		if err != nil {
			if extractErr, ok := extract.AsError(err); ok {
				log.Printf("   ❌ Extraction failed: %v", extractErr)
				log.Printf("   💡 %s", extractErr.Hint)
			} else {
				log.Printf("   ❌ Extraction failed: %v", err)
			}
			failCount++
			continue
		}

		if err := extractor.Validate(text); err != nil {
			log.Printf("   ⚠️  Skipping: extracted only %d characters", len(strings.TrimSpace(text)))
			failCount++
			continue
		}

		result := analysis.Analyze(text)
		log.Printf("   ✅ ATS score: %d", result.ATSScore)
		log.Printf("   🛠  Skills: %s", strings.Join(result.Skills, ", "))
		log.Printf("   🔑 Keywords: %s", strings.Join(result.Keywords, ", "))
		log.Printf("   📧 Contact: %s / %s", result.Contact.Email, result.Contact.Phone)

		if jobDescription != "" {
			score := analysis.MatchScore(text, jobDescription)
			log.Printf("   🎯 Match score: %.2f%%", score)
			ranking = append(ranking, scored{name: name, score: score})
		}

		successCount++
	}

	if len(ranking) > 0 {
		sort.SliceStable(ranking, func(i, j int) bool {
			return ranking[i].score > ranking[j].score
		})

		log.Println("\n" + strings.Repeat("=", 60))
		log.Println("🏆 Ranking:")
		for i, r := range ranking {
			log.Printf("   %2d. %-40s %.2f%%", i+1, r.name, r.score)
		}
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Analysis Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		fmt.Println("⚠️  Some documents failed to analyze. Please check the logs above.")
		os.Exit(1)
	}
}
