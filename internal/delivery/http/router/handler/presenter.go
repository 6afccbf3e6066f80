package handler

import (
	"time"

	"voyago/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user. Credential material and
// outstanding verification codes never leave the server.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Phone:      user.Phone,
		Role:       user.Role.String(),
		IsVerified: user.IsVerified,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
	}
}

func newUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}

	return out
}

// AuthResponse carries the session token together with the user it belongs to.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// PackageResponse is the public view of a catalog package.
type PackageResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           int64     `json:"price"`
	DiscountPercent int       `json:"discount_percent"`
	DiscountedPrice int64     `json:"discounted_price"`
	Features        []string  `json:"features"`
	ImageURLs       []string  `json:"image_urls"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newPackageResponse(pkg *entity.Package) *PackageResponse {
	return &PackageResponse{
		ID:              pkg.ID,
		Title:           pkg.Title,
		Description:     pkg.Description,
		Price:           pkg.Price,
		DiscountPercent: pkg.DiscountPercent,
		DiscountedPrice: pkg.DiscountedPrice,
		Features:        pkg.Features,
		ImageURLs:       pkg.ImageURLs,
		CreatedAt:       pkg.CreatedAt,
		UpdatedAt:       pkg.UpdatedAt,
	}
}

func newPackageResponses(packages []*entity.Package) []*PackageResponse {
	out := make([]*PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, newPackageResponse(p))
	}

	return out
}

// BookingResponse is the public view of a booking.
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	PackageID   uuid.UUID `json:"package_id"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newBookingResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          booking.ID,
		UserID:      booking.UserID,
		PackageID:   booking.PackageID,
		BookingDate: booking.BookingDate,
		Status:      booking.Status.String(),
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

func newBookingResponses(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, newBookingResponse(b))
	}

	return out
}

// PaymentResponse is the public view of a payment attempt.
type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	PackageID     uuid.UUID `json:"package_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newPaymentResponse(payment *entity.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            payment.ID,
		UserID:        payment.UserID,
		PackageID:     payment.PackageID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Status:        payment.Status.String(),
		TransactionID: payment.TransactionID,
		PaymentMethod: payment.PaymentMethod,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

func newPaymentResponses(payments []*entity.Payment) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, newPaymentResponse(p))
	}

	return out
}

// NotificationResponse is the public view of a broadcast notification.
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func newNotificationResponse(n *entity.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

func newNotificationResponses(notifications []*entity.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, newNotificationResponse(n))
	}

	return out
}

// FAQResponse is the public view of an FAQ entry.
type FAQResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newFAQResponse(faq *entity.FAQ) *FAQResponse {
	return &FAQResponse{
		ID:        faq.ID,
		Question:  faq.Question,
		Answer:    faq.Answer,
		UpdatedAt: faq.UpdatedAt,
	}
}

func newFAQResponses(faqs []*entity.FAQ) []*FAQResponse {
	out := make([]*FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, newFAQResponse(f))
	}

	return out
}

// PrivacyPolicyResponse is the public view of the privacy policy document.
type PrivacyPolicyResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPrivacyPolicyResponse(policy *entity.PrivacyPolicy) *PrivacyPolicyResponse {
	return &PrivacyPolicyResponse{
		ID:        policy.ID,
		Content:   policy.Content,
		UpdatedAt: policy.UpdatedAt,
	}
}
