package words

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// bqRow is one row of a dictionary table with columns (word STRING, freq INT64).
type bqRow struct {
	Word string `bigquery:"word"`
	Freq int64  `bigquery:"freq"`
}

// LoadBigQuery reads a dictionary from the BigQuery table named
// "project.dataset.table". Rows are ordered by word so the corpus order is
// stable between runs.
func LoadBigQuery(ctx context.Context, table string) (*Corpus, error) {
	parts := strings.Split(table, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, fmt.Errorf("words: bigquery table %q: want project.dataset.table", table)
	}

	client, err := bigquery.NewClient(ctx, parts[0])
	if err != nil {
		return nil, fmt.Errorf("words: bigquery client: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf("SELECT word, freq FROM `%s` ORDER BY word", table))
	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("words: bigquery query: %w", err)
	}

	var b builder
	for n := 1; ; n++ {
		var row bqRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("words: bigquery row %d: %w", n, err)
		}
		text := fmt.Sprintf("%s %d", row.Word, row.Freq)
		if row.Freq < 0 {
			return nil, &MalformedEntryError{Line: n, Text: text, Reason: "frequency is not a non-negative integer"}
		}
		if err := b.add(row.Word, uint64(row.Freq), n, text); err != nil {
			return nil, err
		}
	}
	return b.corpus(), nil
}
