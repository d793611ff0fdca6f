package navigation

import (
	"errors"
	"fmt"
)

// Screen шаг мастера
type Screen string

// Экраны в порядке прохождения
const (
	DivisionSelection  Screen = "DivisionSelection"
	ProductSelection   Screen = "ProductSelection"
	PfdBlockSelection  Screen = "PfdBlockSelection"
	MainHub            Screen = "MainHub"
	BlockConfiguration Screen = "BlockConfiguration"
)

// Order порядок экранов
var Order = []Screen{
	DivisionSelection,
	ProductSelection,
	PfdBlockSelection,
	MainHub,
	BlockConfiguration,
}

var (
	// ErrUnknownScreen запрошен экран, которого нет в мастере
	ErrUnknownScreen = errors.New("unknown screen")
	// ErrScreenLocked переход вперед без обязательного выбора на предыдущих шагах
	ErrScreenLocked = errors.New("screen locked")
)

// previous фиксированная таблица предшественников для GoBack
var previous = map[Screen]Screen{
	ProductSelection:   DivisionSelection,
	PfdBlockSelection:  ProductSelection,
	MainHub:            PfdBlockSelection,
	BlockConfiguration: MainHub,
}

// Index позиция экрана в Order или -1
func (s Screen) Index() int {
	for i, screen := range Order {
		if screen == s {
			return i
		}
	}
	return -1
}

// Valid true для известных экранов
func (s Screen) Valid() bool {
	return s.Index() >= 0
}

// ParseScreen проверяет имя экрана
func ParseScreen(name string) (Screen, error) {
	s := Screen(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownScreen, name)
	}
	return s, nil
}
