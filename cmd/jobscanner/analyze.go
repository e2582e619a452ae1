package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jeffawe/JobScanner/internal/analyzer"
	"github.com/Jeffawe/JobScanner/internal/fetch"
	"github.com/Jeffawe/JobScanner/internal/nlp"
	"github.com/Jeffawe/JobScanner/internal/observability"
	"github.com/Jeffawe/JobScanner/internal/parsers"
	"github.com/Jeffawe/JobScanner/internal/types"
)

var (
	analyzeURL     string
	analyzeFile    string
	analyzeJSON    bool
	analyzeNoJS    bool
	analyzeVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting from a URL or text file",
	Long: `Fetch a job posting and extract structured data from it.

With --url the page is fetched over HTTP, falling back to a headless
browser for JavaScript-rendered boards. With --file the posting text
is read from disk and analyzed directly.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "Job posting URL to fetch and analyze")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "Path to a file with the posting text")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw JSON result")
	analyzeCmd.Flags().BoolVar(&analyzeNoJS, "no-browser", false, "Disable the headless browser fallback")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Log fetch progress")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if (analyzeURL == "") == (analyzeFile == "") {
		return fmt.Errorf("exactly one of --url or --file is required")
	}

	result, err := analyzePosting(cmd)
	if err != nil {
		return err
	}

	if analyzeJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintAnalysisResult(result)
	return nil
}

func analyzePosting(cmd *cobra.Command) (*types.JobAnalysisResult, error) {
	nlpAnalyzer := analyzer.New(nlp.NewTermFrequencyRanker(), nlp.NewOrgRecognizer())

	if analyzeFile != "" {
		content, err := os.ReadFile(analyzeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read posting file: %w", err)
		}
		return nlpAnalyzer.Analyze(string(content), analyzeURL, "", "")
	}

	opts := fetch.DefaultOptions()
	opts.BrowserFallback = !analyzeNoJS
	opts.Verbose = analyzeVerbose

	page, err := fetch.Posting(cmd.Context(), analyzeURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posting: %w", err)
	}

	if parser := parsers.NewRegistry().Select(analyzeURL); parser != nil {
		return parser.Parse(page.HTML, analyzeURL)
	}
	return nlpAnalyzer.Analyze(page.Text, analyzeURL, "", "")
}
