package dto

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// -------- News --------

type NewsList struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsDetail struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	ImageURL    string     `json:"image_url"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at"`
}

func NewNewsList(n models.News) NewsList {
	return NewsList{ID: n.ID, Title: n.Title, CreatedAt: n.CreatedAt}
}

func (p *Presenter) NewsDetail(ctx context.Context, n models.News) NewsDetail {
	return NewsDetail{
		ID:          n.ID,
		Title:       n.Title,
		ImageURL:    p.url(ctx, n.Image),
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
		PublishedAt: n.PublishedAt,
	}
}

// -------- Products --------

type ProductList struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	PhotoURL  string `json:"photo_url"`
	CountLeft int    `json:"count_left"`
}

type ProductDetail struct {
	ProductList
	ProductType *TitleShort `json:"product_type"`
	Description string      `json:"description"`
}

func (p *Presenter) ProductList(ctx context.Context, pr models.Product) ProductList {
	return ProductList{
		ID:        pr.ID,
		Title:     pr.Title,
		PhotoURL:  p.url(ctx, pr.Photo),
		CountLeft: pr.CountLeft,
	}
}

func (p *Presenter) ProductDetail(ctx context.Context, pr models.Product) ProductDetail {
	out := ProductDetail{
		ProductList: p.ProductList(ctx, pr),
		Description: pr.Description,
	}
	if pr.ProductType != nil {
		out.ProductType = &TitleShort{ID: pr.ProductType.ID, Title: pr.ProductType.Title}
	}
	return out
}

// -------- Product types --------

type ProductTypeList struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type ProductTypeDetail struct {
	ProductTypeList
	Description string `json:"description"`
}

func (p *Presenter) ProductTypeList(ctx context.Context, t models.ProductType) ProductTypeList {
	return ProductTypeList{ID: t.ID, Title: t.Title, ImageURL: p.url(ctx, t.Image)}
}

func (p *Presenter) ProductTypeDetail(ctx context.Context, t models.ProductType) ProductTypeDetail {
	return ProductTypeDetail{
		ProductTypeList: p.ProductTypeList(ctx, t),
		Description:     t.Description,
	}
}

// -------- Service groups --------

type ServiceGroupDetail struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func NewServiceGroupList(g models.ServiceGroup) TitleShort {
	return TitleShort{ID: g.ID, Title: g.Title}
}

func (p *Presenter) ServiceGroupDetail(ctx context.Context, g models.ServiceGroup) ServiceGroupDetail {
	return ServiceGroupDetail{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ImageURL:    p.url(ctx, g.Image),
	}
}

// -------- Services --------

type ServiceList struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

type ServiceDetail struct {
	ServiceList
	ServiceGroup    *TitleShort `json:"service_group"`
	ImageURL        string      `json:"image_url"`
	EmployeePercent int         `json:"employee_percent"`
}

func NewServiceList(s models.Service) ServiceList {
	return ServiceList{ID: s.ID, Title: s.Title, Description: s.Description, Price: s.Price}
}

func (p *Presenter) ServiceDetail(ctx context.Context, s models.Service) ServiceDetail {
	out := ServiceDetail{
		ServiceList:     NewServiceList(s),
		ImageURL:        p.url(ctx, s.Image),
		EmployeePercent: s.EmployeePercent,
	}
	if s.ServiceGroup != nil {
		out.ServiceGroup = &TitleShort{ID: s.ServiceGroup.ID, Title: s.ServiceGroup.Title}
	}
	return out
}
