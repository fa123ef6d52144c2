package models

import (
	"time"

	"github.com/uptrace/bun"
)

type UserDB struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        string  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ClerkID   string  `bun:"clerk_id,notnull,unique" json:"clerk_id"`
	Email     string  `bun:"email,notnull,unique" json:"email"`
	Username  string  `bun:"username,notnull,unique" json:"username"`
	Photo     string  `bun:"photo,notnull" json:"photo"`
	FirstName *string `bun:"first_name" json:"first_name,omitempty"`
	LastName  *string `bun:"last_name" json:"last_name,omitempty"`
	PlanID    int     `bun:"plan_id,notnull,default:1" json:"plan_id"`
	// Historical column name for the credit balance, kept for compatibility
	// with existing records. The domain model exposes it as CreditBalance.
	CreateBalance int       `bun:"create_balance,notnull,default:10" json:"create_balance"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

func (u *UserDB) ToUser() *User {
	usr := &User{
		ID:            u.ID,
		ClerkID:       u.ClerkID,
		Email:         u.Email,
		Username:      u.Username,
		Photo:         u.Photo,
		PlanID:        u.PlanID,
		CreditBalance: u.CreateBalance,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if u.FirstName != nil {
		usr.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		usr.LastName = *u.LastName
	}
	return usr
}

func UserFromDomain(u *User) *UserDB {
	userDB := &UserDB{
		ID:            u.ID,
		ClerkID:       u.ClerkID,
		Email:         u.Email,
		Username:      u.Username,
		Photo:         u.Photo,
		PlanID:        u.PlanID,
		CreateBalance: u.CreditBalance,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if u.FirstName != "" {
		userDB.FirstName = &u.FirstName
	}
	if u.LastName != "" {
		userDB.LastName = &u.LastName
	}
	return userDB
}

type ImageDB struct {
	bun.BaseModel `bun:"table:images,alias:i"`

	ID                 string         `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title              string         `bun:"title,notnull" json:"title"`
	TransformationType string         `bun:"transformation_type,notnull" json:"transformation_type"`
	PublicID           string         `bun:"public_id,notnull" json:"public_id"`
	SecureURL          string         `bun:"secure_url,notnull" json:"secure_url"`
	Width              *int           `bun:"width" json:"width,omitempty"`
	Height             *int           `bun:"height" json:"height,omitempty"`
	Config             map[string]any `bun:"config,type:jsonb" json:"config,omitempty"`
	TransformationURL  *string        `bun:"transformation_url" json:"transformation_url,omitempty"`
	AspectRatio        *string        `bun:"aspect_ratio" json:"aspect_ratio,omitempty"`
	Color              *string        `bun:"color" json:"color,omitempty"`
	Prompt             *string        `bun:"prompt" json:"prompt,omitempty"`
	AuthorID           string         `bun:"author_id,notnull,type:uuid" json:"author_id"`
	Author             *UserDB        `bun:"rel:belongs-to,join:author_id=id,on_delete:CASCADE" json:"-"`
	CreatedAt          time.Time      `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt          time.Time      `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

func (i *ImageDB) ToImage() *Image {
	return &Image{
		ID:                 i.ID,
		Title:              i.Title,
		TransformationType: i.TransformationType,
		PublicID:           i.PublicID,
		SecureURL:          i.SecureURL,
		Width:              i.Width,
		Height:             i.Height,
		Config:             i.Config,
		TransformationURL:  i.TransformationURL,
		AspectRatio:        i.AspectRatio,
		Color:              i.Color,
		Prompt:             i.Prompt,
		AuthorID:           i.AuthorID,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
	}
}

func ImageFromDomain(img *Image) *ImageDB {
	return &ImageDB{
		ID:                 img.ID,
		Title:              img.Title,
		TransformationType: img.TransformationType,
		PublicID:           img.PublicID,
		SecureURL:          img.SecureURL,
		Width:              img.Width,
		Height:             img.Height,
		Config:             img.Config,
		TransformationURL:  img.TransformationURL,
		AspectRatio:        img.AspectRatio,
		Color:              img.Color,
		Prompt:             img.Prompt,
		AuthorID:           img.AuthorID,
		CreatedAt:          img.CreatedAt,
		UpdatedAt:          img.UpdatedAt,
	}
}

type TransactionDB struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`

	ID          string    `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	StripeID    string    `bun:"stripe_id,notnull,unique" json:"stripe_id"`
	Plan        string    `bun:"plan,notnull" json:"plan"`
	AmountCents int64     `bun:"amount_cents,notnull" json:"amount_cents"`
	Credits     int       `bun:"credits,notnull" json:"credits"`
	BuyerID     string    `bun:"buyer_id,notnull,type:uuid" json:"buyer_id"`
	Buyer       *UserDB   `bun:"rel:belongs-to,join:buyer_id=id" json:"-"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

func (t *TransactionDB) ToTransaction() *Transaction {
	return &Transaction{
		ID:          t.ID,
		StripeID:    t.StripeID,
		Plan:        t.Plan,
		AmountCents: t.AmountCents,
		Credits:     t.Credits,
		BuyerID:     t.BuyerID,
		CreatedAt:   t.CreatedAt,
	}
}

func TransactionFromDomain(t *Transaction) *TransactionDB {
	return &TransactionDB{
		ID:          t.ID,
		StripeID:    t.StripeID,
		Plan:        t.Plan,
		AmountCents: t.AmountCents,
		Credits:     t.Credits,
		BuyerID:     t.BuyerID,
		CreatedAt:   t.CreatedAt,
	}
}
