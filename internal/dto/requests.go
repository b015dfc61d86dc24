package dto

import "time"

// StatusUpdate is the only writable shape for appointments, purchases and
// employees. Any other field in the body is ignored.
type StatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ClientCreate registers a client-role user together with its client profile.
type ClientCreate struct {
	Email     string `json:"email" binding:"required,email,max=60"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Name      string `json:"name" binding:"required,max=100"`
	Surname   string `json:"surname" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"required,e164"`
	Address   string `json:"address" binding:"required,max=200"`
	Birthdate *Date  `json:"birthdate"`
}

type ClientUpdate struct {
	Phone     *string `json:"phone" binding:"omitempty,e164"`
	Address   *string `json:"address" binding:"omitempty,max=200"`
	Birthdate *Date   `json:"birthdate"`
}

type WalkInRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"omitempty,e164"`
}

type AppointmentCreate struct {
	ClientID      *uint          `json:"client_id"`
	WalkIn        *WalkInRequest `json:"walk_in"`
	EmployeeID    *uint          `json:"employee_id"`
	PromoCode     string         `json:"promo_code" binding:"omitempty,max=6,promocode"`
	ServiceIDs    []uint         `json:"service_ids"`
	ScheduledTime *time.Time     `json:"scheduled_time"`
}

// -------- catalog writes (admin) --------

type ProductUpdate struct {
	Title         *string    `json:"title" binding:"omitempty,max=100"`
	Description   *string    `json:"description"`
	Photo         *string    `json:"photo" binding:"omitempty,max=255"`
	CountLeft     *int       `json:"count_left" binding:"omitempty,gte=0"`
	ProductTypeID NullableID `json:"product_type_id"`
}

type ProductTypeUpdate struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	Image       *string `json:"image" binding:"omitempty,max=255"`
}

type ServiceGroupUpdate = ProductTypeUpdate

type ServiceUpdate struct {
	Title           *string    `json:"title" binding:"omitempty,max=100"`
	Description     *string    `json:"description"`
	Image           *string    `json:"image" binding:"omitempty,max=255"`
	Price           *int64     `json:"price" binding:"omitempty,gte=0"`
	EmployeePercent *int       `json:"employee_percent" binding:"omitempty,gte=0"`
	ServiceGroupID  NullableID `json:"service_group_id"`
}
