package domain

import (
	"fmt"
	"time"
)

// SiteContent is the page copy edited through the admin panel. Every section
// is always present; saves overwrite the whole object, never a partial one.
type SiteContent struct {
	Hero    HeroContent    `json:"hero"`
	Home    HomeContent    `json:"home"`
	About   AboutContent   `json:"about"`
	Contact ContactContent `json:"contact"`
	Footer  FooterContent  `json:"footer"`
	Shop    ShopContent    `json:"shop"`
}

type HeroContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Button1  string `json:"button1"`
	Button2  string `json:"button2"`
}

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type HomeContent struct {
	Features         []Feature `json:"features"`
	FeaturedTitle    string    `json:"featuredTitle"`
	FeaturedSubtitle string    `json:"featuredSubtitle"`
	ViewAllButton    string    `json:"viewAllButton"`
	WhyChooseTitle   string    `json:"whyChooseTitle"`
	WhyChooseText1   string    `json:"whyChooseText1"`
	WhyChooseText2   string    `json:"whyChooseText2"`
	LearnMoreButton  string    `json:"learnMoreButton"`
}

type AboutContent struct {
	HeroTitle      string    `json:"heroTitle"`
	HeroSubtitle   string    `json:"heroSubtitle"`
	WelcomeTitle   string    `json:"welcomeTitle"`
	WelcomeText1   string    `json:"welcomeText1"`
	WelcomeText2   string    `json:"welcomeText2"`
	WelcomeText3   string    `json:"welcomeText3"`
	WhyChooseTitle string    `json:"whyChooseTitle"`
	Features       []Feature `json:"features"`
	Stats          []Stat    `json:"stats"`
	MissionTitle   string    `json:"missionTitle"`
	MissionText    string    `json:"missionText"`
}

type ContactDetail struct {
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

type ContactContent struct {
	HeroTitle       string          `json:"heroTitle"`
	HeroSubtitle    string          `json:"heroSubtitle"`
	InfoTitle       string          `json:"infoTitle"`
	InfoDescription string          `json:"infoDescription"`
	ContactInfo     []ContactDetail `json:"contactInfo"`
	MapNote         string          `json:"mapNote"`
	FormTitle       string          `json:"formTitle"`
	SubmitButton    string          `json:"submitButton"`
}

type FooterContent struct {
	Tagline          string `json:"tagline"`
	NewsletterTitle  string `json:"newsletterTitle"`
	NewsletterText   string `json:"newsletterText"`
	NewsletterButton string `json:"newsletterButton"`
	Location         string `json:"location"`
	Copyright        string `json:"copyright"`
}

type ShopContent struct {
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
}

// DefaultContent returns the built-in page copy used to initialize the store
// on first read.
func DefaultContent() SiteContent {
	return SiteContent{
		Hero: HeroContent{
			Title:    "Discover Your True Radiance",
			Subtitle: "Premium cosmetics crafted for the modern individual. Embrace your natural beauty with our exclusive collection.",
			Button1:  "Shop Collection",
			Button2:  "Our Story",
		},
		Home: HomeContent{
			Features: []Feature{
				{Icon: "✨", Title: "Premium Quality", Description: "Carefully selected products from trusted brands"},
				{Icon: "🚚", Title: "Islandwide Delivery", Description: "Fast and reliable delivery across Sri Lanka"},
				{Icon: "💳", Title: "Secure Payment", Description: "Safe and secure payment options"},
				{Icon: "🎁", Title: "Special Offers", Description: "Exclusive deals and discounts"},
			},
			FeaturedTitle:    "Featured Collection",
			FeaturedSubtitle: "Discover our handpicked selection of premium products",
			ViewAllButton:    "View All Products",
			WhyChooseTitle:   "Why Choose Kevina?",
			WhyChooseText1:   "We believe that beauty is a personal journey. Our products are cruelty-free, sustainably sourced, and designed to enhance your natural features rather than mask them.",
			WhyChooseText2:   "Based in Boralesgamuwa, we offer islandwide delivery, bringing premium beauty products directly to your doorstep. Experience the difference with Kevina Cosmetics.",
			LearnMoreButton:  "Learn More",
		},
		About: AboutContent{
			HeroTitle:    "Our Story",
			HeroSubtitle: "Redefining beauty with nature and science",
			WelcomeTitle: "Welcome to Kevina Cosmetics",
			WelcomeText1: "At Kevina Cosmetics, we believe that beauty is a personal journey. Founded with a passion for premium quality and natural ingredients, we've been serving customers across Sri Lanka with the finest cosmetics and skincare products.",
			WelcomeText2: "Our mission is to enhance your natural beauty while maintaining the highest standards of quality, sustainability, and ethical practices. Every product in our collection is carefully selected to ensure it meets our rigorous standards for effectiveness and safety.",
			WelcomeText3: "Based in Boralesgamuwa, we offer islandwide delivery, bringing premium beauty products directly to your doorstep. Whether you're looking for skincare essentials, haircare solutions, or the latest beauty trends, we've got you covered.",
			WhyChooseTitle: "Why Choose Us",
			Features: []Feature{
				{Icon: "🌍", Title: "Trusted Global Brands", Description: "Our products come from internationally recognized brands known for quality, safety, and proven results."},
				{Icon: "💰", Title: "Affordable & Competitive Prices", Description: "Get premium skincare and haircare products at reasonable prices without compromising quality."},
				{Icon: "🚚", Title: "Fast & Reliable Delivery", Description: "We ensure quick and safe delivery across Sri Lanka, right to your doorstep."},
			},
			Stats: []Stat{
				{Number: "10K+", Label: "Happy Customers"},
				{Number: "500+", Label: "Products"},
				{Number: "50+", Label: "Cities Served"},
				{Number: "5+", Label: "Years Experience"},
			},
			MissionTitle: "Our Mission",
			MissionText:  "To empower individuals to express their unique beauty through premium, ethically-sourced cosmetics and skincare products. We are committed to providing exceptional quality, outstanding customer service, and sustainable practices that benefit both our customers and the planet.",
		},
		Contact: ContactContent{
			HeroTitle:       "Get in Touch",
			HeroSubtitle:    "We'd love to hear from you. Send us a message and we'll respond as soon as possible.",
			InfoTitle:       "Contact Information",
			InfoDescription: "Have a question or need assistance? We're here to help! Reach out to us through any of the following channels.",
			ContactInfo: []ContactDetail{
				{Icon: "📍", Title: "Location", Details: "Boralesgamuwa, Sri Lanka"},
				{Icon: "📞", Title: "Phone", Details: "+94702886067"},
				{Icon: "✉️", Title: "Email", Details: "kevinacosmetics2026@gmail.com"},
				{Icon: "🕒", Title: "Hours", Details: "Mon - Sat: 9:00 AM - 6:00 PM"},
			},
			MapNote:      "Islandwide Delivery Available",
			FormTitle:    "Send us a Message",
			SubmitButton: "Send Message",
		},
		Footer: FooterContent{
			Tagline:          "Redefining beauty with nature and science. Premium cosmetics for the modern you.",
			NewsletterTitle:  "Stay Updated",
			NewsletterText:   "Subscribe to our newsletter for exclusive offers, beauty tips, and new product launches.",
			NewsletterButton: "Subscribe",
			Location:         "📍 Boralesgamuwa | Islandwide Delivery",
			Copyright:        fmt.Sprintf("© %d Kevina Cosmetics. All rights reserved.", time.Now().Year()),
		},
		Shop: ShopContent{
			HeroTitle:    "Our Collection",
			HeroSubtitle: "Discover premium cosmetics and skincare products",
		},
	}
}
