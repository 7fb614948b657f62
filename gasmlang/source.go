package gasmlang

import "strings"

type Source struct {
	Name  string
	Lines []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:  name,
		Lines: strings.Split(content, "\n"),
	}
}
