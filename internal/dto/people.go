package dto

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// -------- Employees --------

type EmployeeList struct {
	ID     uint      `json:"id"`
	User   UserShort `json:"user"`
	Status string    `json:"status"`
}

type EmployeeDetail struct {
	ID           uint        `json:"id"`
	User         UserShort   `json:"user"`
	Status       string      `json:"status"`
	WorkPosition *TitleShort `json:"work_position"`
	PhotoURL     string      `json:"photo_url"`
	Phone        string      `json:"phone"`
	Birthdate    *Date       `json:"birthdate"`
	Address      string      `json:"address"`
}

func NewEmployeeList(e models.Employee) EmployeeList {
	return EmployeeList{ID: e.ID, User: userShort(e.User), Status: e.Status}
}

func (p *Presenter) EmployeeDetail(ctx context.Context, e models.Employee) EmployeeDetail {
	out := EmployeeDetail{
		ID:        e.ID,
		User:      userShort(e.User),
		Status:    e.Status,
		PhotoURL:  p.url(ctx, e.Photo),
		Phone:     e.Phone,
		Birthdate: NewDate(e.Birthdate),
		Address:   e.Address,
	}
	if e.WorkPosition != nil {
		out.WorkPosition = &TitleShort{ID: e.WorkPosition.ID, Title: e.WorkPosition.Title}
	}
	return out
}

// -------- Clients --------

type ClientList struct {
	ID    uint      `json:"id"`
	User  UserShort `json:"user"`
	Phone string    `json:"phone"`
}

type ClientDetail struct {
	ID        uint       `json:"id"`
	User      UserDetail `json:"user"`
	Birthdate *Date      `json:"birthdate"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
}

func NewClientList(c models.Client) ClientList {
	return ClientList{ID: c.ID, User: userShort(c.User), Phone: c.Phone}
}

func NewClientDetail(c models.Client) ClientDetail {
	out := ClientDetail{
		ID:      c.ID,
		User:    NewUserDetail(c.User),
		Phone:   c.Phone,
		Address: c.Address,
	}
	if c.Birthdate != nil {
		out.Birthdate = NewDate(*c.Birthdate)
	}
	return out
}

// -------- Audit logs --------

type AuditLogView struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *uint     `json:"entity_id"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuditLogView(l models.AuditLog) AuditLogView {
	return AuditLogView{
		ID:        l.ID,
		UserID:    l.UserID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		Metadata:  l.Metadata,
		CreatedAt: l.CreatedAt,
	}
}
