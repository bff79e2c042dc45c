package tokenizer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
)

// Entry is a vocabulary term and how often it was added.
type Entry struct {
	Term  string `json:"term"`
	Count uint64 `json:"count"`
}

// Vocabulary holds term frequencies in an FST for fast lookups.
// The text file (one "term<TAB>count" per line) is the source of truth;
// the FST lives next to it with an .fst extension.
type Vocabulary struct {
	fst     *vellum.FST
	counts  map[string]uint64
	fstPath string
	txtPath string
	mu      sync.RWMutex
}

// NewVocabulary loads the vocabulary at txtPath. A missing file yields an
// empty vocabulary that is created on the first write.
func NewVocabulary(txtPath string) (*Vocabulary, error) {
	fstPath := strings.TrimSuffix(txtPath, ".txt") + ".fst"

	v := &Vocabulary{
		counts:  make(map[string]uint64),
		fstPath: fstPath,
		txtPath: txtPath,
	}

	if err := v.loadTextFile(); err != nil {
		return nil, err
	}

	if err := v.loadOrBuildFST(); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vocabulary) loadTextFile() error {
	file, err := os.Open(v.txtPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		term, countStr, found := strings.Cut(line, "\t")
		count := uint64(1)
		if found {
			count, err = strconv.ParseUint(strings.TrimSpace(countStr), 10, 64)
			if err != nil {
				return fmt.Errorf("%s:%d: bad count: %w", v.txtPath, lineNo, err)
			}
		}
		v.counts[term] += count
	}
	return scanner.Err()
}

func (v *Vocabulary) loadOrBuildFST() error {
	if len(v.counts) == 0 {
		return nil
	}
	if fst, err := vellum.Open(v.fstPath); err == nil {
		v.fst = fst
		return nil
	}

	return v.rebuildFST()
}

// Count returns how often term was added.
func (v *Vocabulary) Count(term string) (uint64, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.fst == nil {
		return 0, false
	}
	count, exists, err := v.fst.Get([]byte(term))
	if err != nil {
		return 0, false
	}
	return count, exists
}

// WithPrefix returns up to limit entries whose term starts with prefix, in
// lexical order. A limit of zero or less means no limit.
func (v *Vocabulary) WithPrefix(prefix string, limit int) ([]Entry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.fst == nil {
		return nil, nil
	}

	itr, err := v.fst.Iterator([]byte(prefix), nil)
	var entries []Entry
	for err == nil {
		key, count := itr.Current()
		if !bytes.HasPrefix(key, []byte(prefix)) {
			break
		}
		entries = append(entries, Entry{Term: string(key), Count: count})
		if limit > 0 && len(entries) >= limit {
			break
		}
		err = itr.Next()
	}
	if err != nil && !errors.Is(err, vellum.ErrIteratorDone) {
		return nil, err
	}
	return entries, nil
}

// Add increments the count of every term and persists the result.
func (v *Vocabulary) Add(terms ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, term := range terms {
		if term == "" {
			continue
		}
		v.counts[term]++
	}
	return v.rebuildFST()
}

// Remove deletes term and persists the result.
func (v *Vocabulary) Remove(term string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.counts, term)
	return v.rebuildFST()
}

// Rebuild rebuilds the FST from the current counts and saves to disk.
func (v *Vocabulary) Rebuild() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rebuildFST()
}

// rebuildFST rebuilds FST without locking (caller must hold lock).
func (v *Vocabulary) rebuildFST() error {
	if v.fst != nil {
		v.fst.Close()
		v.fst = nil
	}

	terms := v.sortedTerms()

	fstFile, err := os.Create(v.fstPath)
	if err != nil {
		return err
	}

	builder, err := vellum.New(fstFile, nil)
	if err != nil {
		fstFile.Close()
		return err
	}

	for _, term := range terms {
		if err := builder.Insert([]byte(term), v.counts[term]); err != nil {
			builder.Close()
			fstFile.Close()
			return fmt.Errorf("insert %q: %w", term, err)
		}
	}

	if err := builder.Close(); err != nil {
		fstFile.Close()
		return err
	}
	if err := fstFile.Close(); err != nil {
		return err
	}

	fst, err := vellum.Open(v.fstPath)
	if err != nil {
		return err
	}
	v.fst = fst

	return v.saveTextFile(terms)
}

func (v *Vocabulary) sortedTerms() []string {
	terms := make([]string, 0, len(v.counts))
	for term := range v.counts {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

func (v *Vocabulary) saveTextFile(terms []string) error {
	file, err := os.Create(v.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, term := range terms {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", term, v.counts[term]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Close releases FST resources.
func (v *Vocabulary) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.fst != nil {
		err := v.fst.Close()
		v.fst = nil
		return err
	}
	return nil
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.counts)
}
