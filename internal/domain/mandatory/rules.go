// Package mandatory определяет обязательность позиции по тегу P&ID (ISA-5.1).
package mandatory

import (
	"regexp"
	"strings"
)

// defaultPatterns упорядоченный список шаблонов обязательных тегов
var defaultPatterns = []string{
	// Основное оборудование
	`^P-\d+[A-Z]?`, // насосы: P-101, P-101A
	`^V-\d+[A-Z]?`, // клапаны: V-101, V-205B
	`^TK-\d+`,      // емкости: TK-100
	`^T-\d+`,       // емкости (альтернативно): T-201
	`^R-\d+`,       // реакторы
	`^E-\d+`,       // теплообменники
	`^C-\d+`,       // компрессоры

	// Безопасность
	`^PSV-\d+`, // предохранительные клапаны
	`^PRV-\d+`, // сбросные клапаны
	`^RD-\d+`,  // разрывные мембраны
	`^SDV-\d+`, // отсечные клапаны
	`^SIS-`,    // системы ПАЗ
	`^ESD-`,    // аварийный останов

	// Альтернативные написания
	`^PUMP-?\d+`,
	`^TANK-?\d+`,
	`^VALVE-?\d+`,
}

// Classifier проверяет тег по упорядоченному набору шаблонов
type Classifier struct {
	patterns []*regexp.Regexp
}

// NewClassifier создает классификатор со стандартными шаблонами.
// Дополнительные шаблоны проверяются после стандартных.
func NewClassifier(extra ...string) (*Classifier, error) {
	all := make([]string, 0, len(defaultPatterns)+len(extra))
	all = append(all, defaultPatterns...)
	all = append(all, extra...)

	compiled := make([]*regexp.Regexp, 0, len(all))
	for _, pattern := range all {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}

	return &Classifier{patterns: compiled}, nil
}

// With возвращает новый классификатор: текущие шаблоны и за ними extra.
// Исходный классификатор не меняется.
func (c *Classifier) With(extra ...string) (*Classifier, error) {
	compiled := make([]*regexp.Regexp, 0, len(c.patterns)+len(extra))
	compiled = append(compiled, c.patterns...)
	for _, pattern := range extra {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &Classifier{patterns: compiled}, nil
}

// Default возвращает классификатор только со стандартными шаблонами
func Default() *Classifier {
	c, err := NewClassifier()
	if err != nil {
		panic(err)
	}
	return c
}

// Patterns возвращает активные шаблоны в порядке проверки
func (c *Classifier) Patterns() []string {
	out := make([]string, len(c.patterns))
	for i, re := range c.patterns {
		out[i] = strings.TrimPrefix(re.String(), "(?i)")
	}
	return out
}

// IsMandatory возвращает true, если обрезанный текст подходит под один из шаблонов
func (c *Classifier) IsMandatory(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	for _, re := range c.patterns {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}
