package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lithoparse/lithoparse/internal/pipeline"
)

// Processor defines the interface for processing one description.
type Processor interface {
	Process(text string) *pipeline.Result
}

// ParseJob is one description to parse, tagged with its input position.
type ParseJob struct {
	Line      int
	Text      string
	Processor Processor
}

// Execute executes the parse job.
func (j *ParseJob) Execute(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return &ParseResult{Line: j.Line, Text: j.Text, Error: ctx.Err()}
	default:
	}
	return &ParseResult{
		Line:   j.Line,
		Text:   j.Text,
		Result: j.Processor.Process(j.Text),
	}
}

// ParseResult is the result of one parse job.
type ParseResult struct {
	Line   int
	Text   string
	Result *pipeline.Result
	Error  error
}

// GetError returns the error from the parse result.
func (r *ParseResult) GetError() error {
	return r.Error
}

// Sequence returns the input position, so Wait restores input order.
func (r *ParseResult) Sequence() int {
	return r.Line
}

// BatchProcessor parses many descriptions concurrently.
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessDescriptions parses descriptions concurrently, returning results
// in input order.
func (b *BatchProcessor) ProcessDescriptions(ctx context.Context, descriptions []string) []*ParseResult {
	if len(descriptions) == 0 {
		return []*ParseResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for i, text := range descriptions {
		pool.Submit(&ParseJob{
			Line:      i,
			Text:      text,
			Processor: b.processor,
		})
	}

	// ParseResult is Sequenced, so Wait returns input order.
	results := pool.Wait()

	parseResults := make([]*ParseResult, len(results))
	for i, result := range results {
		parseResults[i] = result.(*ParseResult)
	}

	return parseResults
}

// ProcessFile reads descriptions from a file and parses them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ParseResult, error) {
	descriptions, err := ReadDescriptionsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read descriptions: %w", err)
	}

	return b.ProcessDescriptions(ctx, descriptions), nil
}

// ReadDescriptionsFromFile reads descriptions from a file, one per line.
// Blank lines and # comments are skipped.
func ReadDescriptionsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var descriptions []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		descriptions = append(descriptions, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return descriptions, nil
}
