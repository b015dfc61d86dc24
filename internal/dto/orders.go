package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ClientShort struct {
	ID    uint      `json:"id"`
	User  UserShort `json:"user"`
	Phone string    `json:"phone"`
}

type EmployeeShort struct {
	ID     uint      `json:"id"`
	User   UserShort `json:"user"`
	Status string    `json:"status"`
}

type DiscountView struct {
	ID             uint   `json:"id"`
	DiscountAmount int    `json:"discount_amount"`
	PromoCode      string `json:"promo_code"`
}

type ServiceShort struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
}

type ProductShort struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	CountLeft int    `json:"count_left"`
}

func clientShort(c *models.Client) *ClientShort {
	if c == nil {
		return nil
	}
	return &ClientShort{ID: c.ID, User: userShort(c.User), Phone: c.Phone}
}

func employeeShort(e *models.Employee) *EmployeeShort {
	if e == nil {
		return nil
	}
	return &EmployeeShort{ID: e.ID, User: userShort(e.User), Status: e.Status}
}

func discountView(d *models.Discount) *DiscountView {
	if d == nil {
		return nil
	}
	return &DiscountView{ID: d.ID, DiscountAmount: d.DiscountAmount, PromoCode: d.PromoCode}
}

// -------- Appointments --------

// AppointmentView is both the list and the detail shape.
type AppointmentView struct {
	ID            uint           `json:"id"`
	Client        *ClientShort   `json:"client"`
	Employee      *EmployeeShort `json:"employee"`
	Discount      *DiscountView  `json:"discount"`
	Services      []ServiceShort `json:"services"`
	FullPrice     int64          `json:"full_price"`
	WalkInName    *string        `json:"walk_in_name"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	ScheduledTime *time.Time     `json:"scheduled_time"`
}

func NewAppointmentView(a models.Appointment) AppointmentView {
	return AppointmentView{
		ID:       a.ID,
		Client:   clientShort(a.Client),
		Employee: employeeShort(a.Employee),
		Discount: discountView(a.Discount),
		Services: Map(a.Services, func(s models.Service) ServiceShort {
			return ServiceShort{ID: s.ID, Title: s.Title, Price: s.Price}
		}),
		FullPrice:     a.FullPrice,
		WalkInName:    a.WalkInName,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		ScheduledTime: a.ScheduledTime,
	}
}

// -------- Purchases --------

type PurchaseView struct {
	ID         uint           `json:"id"`
	Client     *ClientShort   `json:"client"`
	Products   []ProductShort `json:"products"`
	Discount   *DiscountView  `json:"discount"`
	WalkInName *string        `json:"walk_in_name"`
	Status     string         `json:"status"`
	FullPrice  int64          `json:"full_price"`
	CreatedAt  time.Time      `json:"created_at"`
}

func NewPurchaseView(p models.Purchase) PurchaseView {
	return PurchaseView{
		ID:     p.ID,
		Client: clientShort(p.Client),
		Products: Map(p.Products, func(pr models.Product) ProductShort {
			return ProductShort{ID: pr.ID, Title: pr.Title, CountLeft: pr.CountLeft}
		}),
		Discount:   discountView(p.Discount),
		WalkInName: p.WalkInName,
		Status:     p.Status,
		FullPrice:  p.FullPrice,
		CreatedAt:  p.CreatedAt,
	}
}
