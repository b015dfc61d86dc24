package dto

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/media"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// Presenter builds response views. It owns the media resolver so image keys
// become URLs on the way out.
type Presenter struct {
	media media.Resolver
}

func NewPresenter(resolver media.Resolver) *Presenter {
	return &Presenter{media: resolver}
}

func (p *Presenter) url(ctx context.Context, key string) string {
	if p.media == nil {
		return key
	}
	return p.media.URL(ctx, key)
}

// -------- shared short forms --------

type UserShort struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type UserDetail struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Role    string `json:"role"`
}

type TitleShort struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func userShort(u models.User) UserShort {
	return UserShort{ID: u.ID, Name: u.Name, Surname: u.Surname}
}

func NewUserDetail(u models.User) UserDetail {
	return UserDetail{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Surname: u.Surname,
		Role:    string(u.Role),
	}
}

// Map projects every item of in through fn.
func Map[M any, V any](in []M, fn func(M) V) []V {
	out := make([]V, 0, len(in))
	for _, m := range in {
		out = append(out, fn(m))
	}
	return out
}
