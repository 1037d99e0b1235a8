package handler

import (
	"time"

	"eventhub/internal/domain/entity"
)

// dateDisplayLayout renders event dates for people, e.g. "June 01, 2025".
const dateDisplayLayout = "January 02, 2006"

// UserView is the public serialization of an account.
type UserView struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsVendor  bool   `json:"is_vendor"`
	IsPlanner bool   `json:"is_planner"`
}

func presentUser(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsVendor:  u.IsVendor,
		IsPlanner: u.IsPlanner,
	}
}

// EventView is the full serialization of an event.
type EventView struct {
	ID          uint      `json:"id"`
	Planner     string    `json:"planner"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	DateDisplay string    `json:"date_display"`
	Location    string    `json:"location"`
	GuestCount  int64     `json:"guest_count"`
	VendorCount int64     `json:"vendor_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func presentEvent(e *entity.Event) *EventView {
	if e == nil {
		return nil
	}

	return &EventView{
		ID:          e.ID,
		Planner:     e.PlannerUsername,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		DateDisplay: e.Date.Format(dateDisplayLayout),
		Location:    e.Location,
		GuestCount:  e.GuestCount,
		VendorCount: e.VendorCount,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// EventSummaryView is the reduced projection used by the event list.
type EventSummaryView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	GuestCount  int64     `json:"guest_count"`
	VendorCount int64     `json:"vendor_count"`
}

func presentEventSummaries(events []*entity.Event) []*EventSummaryView {
	views := make([]*EventSummaryView, 0, len(events))
	for _, e := range events {
		views = append(views, &EventSummaryView{
			ID:          e.ID,
			Title:       e.Title,
			Date:        e.Date,
			Location:    e.Location,
			GuestCount:  e.GuestCount,
			VendorCount: e.VendorCount,
		})
	}

	return views
}

// GuestUserView identifies the account a guest is linked to.
type GuestUserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// GuestView is the serialization of a guest.
type GuestView struct {
	ID         uint           `json:"id"`
	Event      string         `json:"event"`
	User       *GuestUserView `json:"user"`
	Name       *string        `json:"name"`
	Email      string         `json:"email"`
	RSVPStatus string         `json:"rsvp_status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func presentGuest(g *entity.Guest) *GuestView {
	view := &GuestView{
		ID:         g.ID,
		Event:      g.EventTitle,
		Name:       g.Name,
		Email:      g.Email,
		RSVPStatus: string(g.RSVPStatus),
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
	if g.User != nil {
		view.User = &GuestUserView{
			ID:       g.User.ID,
			Username: g.User.Username,
			Email:    g.User.Email,
			FullName: g.User.FullName(),
		}
	}

	return view
}

func presentGuests(guests []*entity.Guest) []*GuestView {
	views := make([]*GuestView, 0, len(guests))
	for _, g := range guests {
		views = append(views, presentGuest(g))
	}

	return views
}

// VendorView is the directory serialization of a vendor with its aggregates.
type VendorView struct {
	ID             uint    `json:"id"`
	BusinessName   string  `json:"business_name"`
	ProfilePic     *string `json:"profile_pic"`
	Description    *string `json:"description"`
	Location       *string `json:"location"`
	ContactInfo    *string `json:"contact_info"`
	IsVerified     bool    `json:"is_verified"`
	AverageRating  float64 `json:"average_rating"`
	ServicesCount  int64   `json:"services_count"`
	PortfolioCount int64   `json:"portfolio_count"`
	ReviewsCount   int64   `json:"reviews_count"`
}

func presentVendor(v *entity.VendorProfile) *VendorView {
	if v == nil {
		return nil
	}

	return &VendorView{
		ID:             v.ID,
		BusinessName:   v.BusinessName,
		ProfilePic:     v.ProfilePic,
		Description:    v.Description,
		Location:       v.Location,
		ContactInfo:    v.ContactInfo,
		IsVerified:     v.IsVerified,
		AverageRating:  entity.RoundRating(v.Stats.AverageRating),
		ServicesCount:  v.Stats.ServicesCount,
		PortfolioCount: v.Stats.PortfolioCount,
		ReviewsCount:   v.Stats.ReviewsCount,
	}
}

func presentVendors(vendors []*entity.VendorProfile) []*VendorView {
	views := make([]*VendorView, 0, len(vendors))
	for _, v := range vendors {
		views = append(views, presentVendor(v))
	}

	return views
}

// VendorDetailView is a vendor together with its services.
type VendorDetailView struct {
	*VendorView
	Services []*ServiceView `json:"services"`
}

// CategoryView is the serialization of a service category.
type CategoryView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func presentCategories(categories []*entity.ServiceCategory) []*CategoryView {
	views := make([]*CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, &CategoryView{ID: c.ID, Name: c.Name, Description: c.Description})
	}

	return views
}

// ServiceView is the serialization of a vendor service. Price is a decimal
// string with two places.
type ServiceView struct {
	ID                uint      `json:"id"`
	Vendor            string    `json:"vendor"`
	VendorID          uint      `json:"vendor_id"`
	Category          *string   `json:"category"`
	CategoryID        *uint     `json:"category_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Price             string    `json:"price"`
	AvailabilityNotes *string   `json:"availability_notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func presentService(s *entity.Service) *ServiceView {
	if s == nil {
		return nil
	}

	view := &ServiceView{
		ID:                s.ID,
		Vendor:            s.VendorName,
		VendorID:          s.VendorID,
		CategoryID:        s.CategoryID,
		Title:             s.Title,
		Description:       s.Description,
		Price:             s.Price.StringFixed(entity.PriceScale),
		AvailabilityNotes: s.AvailabilityNotes,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.Category != nil {
		name := s.Category.Name
		view.Category = &name
	}

	return view
}

func presentServices(services []*entity.Service) []*ServiceView {
	views := make([]*ServiceView, 0, len(services))
	for _, s := range services {
		views = append(views, presentService(s))
	}

	return views
}

// BookingView is the serialization of a booking with its event, vendor and service.
type BookingView struct {
	ID        uint         `json:"id"`
	Event     *EventView   `json:"event"`
	Vendor    *VendorView  `json:"vendor"`
	Service   *ServiceView `json:"service"`
	Status    string       `json:"status"`
	Notes     *string      `json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func presentBooking(b *entity.Booking) *BookingView {
	return &BookingView{
		ID:        b.ID,
		Event:     presentEvent(b.Event),
		Vendor:    presentVendor(b.Vendor),
		Service:   presentService(b.Service),
		Status:    string(b.Status),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func presentBookings(bookings []*entity.Booking) []*BookingView {
	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, presentBooking(b))
	}

	return views
}

// PortfolioItemView is the serialization of a portfolio item. Image is the public URL.
type PortfolioItemView struct {
	ID          uint      `json:"id"`
	Vendor      string    `json:"vendor"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func presentPortfolioItem(item *entity.PortfolioItem) *PortfolioItemView {
	view := &PortfolioItemView{
		ID:          item.ID,
		Vendor:      item.VendorName,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
	if item.ImageURL != "" {
		url := item.ImageURL
		view.Image = &url
	}

	return view
}

func presentPortfolioItems(items []*entity.PortfolioItem) []*PortfolioItemView {
	views := make([]*PortfolioItemView, 0, len(items))
	for _, item := range items {
		views = append(views, presentPortfolioItem(item))
	}

	return views
}

// ReviewView is the serialization of a review.
type ReviewView struct {
	ID        uint      `json:"id"`
	Vendor    string    `json:"vendor"`
	VendorID  uint      `json:"vendor_id"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func presentReview(r *entity.Review) *ReviewView {
	return &ReviewView{
		ID:        r.ID,
		Vendor:    r.VendorName,
		VendorID:  r.VendorID,
		User:      r.Username,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func presentReviews(reviews []*entity.Review) []*ReviewView {
	views := make([]*ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, presentReview(r))
	}

	return views
}
