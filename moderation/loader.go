package moderation

import (
	"bufio"
	"bytes"
	"chatterbox/errors"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Dictionary is the merged content of every language file of a directory.
type Dictionary struct {
	Words     []string
	Languages []string
}

// LoadDictionary reads every .txt file of dir as one language ("fr.txt" -> "fr"), one word per line.
// Duplicates across languages are kept once.
func LoadDictionary(fsys fs.FS, dir string) (Dictionary, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return Dictionary{}, err
	}

	var languages []string
	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return Dictionary{}, err
		}
		// The scanner copes with both \n and \r\n endings
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				unique[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return Dictionary{}, err
		}
	}

	if len(unique) == 0 {
		return Dictionary{}, errors.ErrEmptyWords
	}
	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	sort.Strings(words)
	return Dictionary{Words: words, Languages: languages}, nil
}
