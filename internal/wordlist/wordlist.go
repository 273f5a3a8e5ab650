// Package wordlist loads the vocabulary that fills lines once the seed text
// runs out.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BuiltinLang is the language shipped inside the binary.
const BuiltinLang = "en"

//go:embed en.txt
var builtinEnglish string

// ErrEmpty is returned when a word list has no usable words.
var ErrEmpty = errors.New("word list is empty")

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return readWords(file)
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// Builtin returns the embedded English common-word pool.
func Builtin() []string {
	words, err := readWords(strings.NewReader(builtinEnglish))
	if err != nil {
		panic(fmt.Sprintf("embedded word list: %v", err))
	}
	return words
}

// Load returns the filtered vocabulary for lang. A file <dir>/<lang>.txt
// takes precedence; otherwise the built-in pool is used for English.
func Load(lang, dir string) ([]string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil, fmt.Errorf("language is empty")
	}

	words, err := loadFromDir(lang, dir)
	if err != nil {
		return nil, err
	}

	filter := FilterForLang(lang)
	kept := words[:0]
	for _, w := range words {
		w = strings.ToLower(w)
		if filter(w) {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("word list for %q: %w", lang, ErrEmpty)
	}
	return kept, nil
}

func loadFromDir(lang, dir string) ([]string, error) {
	if dir != "" {
		path := filepath.Join(dir, lang+".txt")
		words, err := LoadWords(path)
		if err == nil {
			return words, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load word list: %w", err)
		}
	}
	if lang != BuiltinLang {
		return nil, fmt.Errorf("no word list for %q in %s", lang, dir)
	}
	return Builtin(), nil
}

// Langs lists the languages available: the built-in one plus every *.txt
// file in dir.
func Langs(dir string) ([]string, error) {
	set := map[string]struct{}{BuiltinLang: {}}
	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read word list dir: %w", err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || filepath.Ext(name) != ".txt" {
				continue
			}
			set[strings.TrimSuffix(name, ".txt")] = struct{}{}
		}
	}
	langs := make([]string, 0, len(set))
	for lang := range set {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}
