package services

import "errors"

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
)

// Error - ожидаемая ошибка бизнес-логики. Message уходит клиенту как есть.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func notFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }
func conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

var (
	ErrUserNotFound           = notFound("User not found")
	ErrPlanetNotFound         = notFound("Planet not found")
	ErrPersonNotFound         = notFound("Person not found")
	ErrFavoritePlanetNotFound = notFound("Favorite planet not found")
	ErrFavoritePersonNotFound = notFound("Favorite person not found")

	ErrPlanetAlreadyFavorite = conflict("Planet already in favorites")
	ErrPersonAlreadyFavorite = conflict("Person already in favorites")
)

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }
func IsConflict(err error) bool { return kindOf(err) == KindConflict }
