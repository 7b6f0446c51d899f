package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"staykedarnath/internal/database"
	"staykedarnath/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "staykedarnath.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM banner_events")
	db.Exec("DELETE FROM wishlist_items")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM message_templates")
	db.Exec("DELETE FROM help_articles")
	db.Exec("DELETE FROM plugin_flags")
	db.Exec("DELETE FROM content_overrides")
	db.Exec("DELETE FROM trip_packages")
	db.Exec("DELETE FROM admin_allowlist")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@staykedarnath.com",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Operations Admin",
	}
	db.Create(&admin)
	db.Create(&domain.AdminAllowlistEntry{Email: admin.Email, AddedBy: "seed"})
	log.Println("Admin created: admin@staykedarnath.com / admin123")

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := domain.User{
		Email:        "asha@example.com",
		PasswordHash: string(customerHash),
		Role:         domain.RoleCustomer,
		Name:         "Asha Verma",
		Phone:        "+91 98765 43210",
	}
	db.Create(&customer)

	// ================== PACKAGES ==================
	log.Println("Creating trip packages...")
	packages := []domain.TripPackage{
		{
			Slug:         "kedarnath-darshan",
			Title:        "Kedarnath Darshan",
			Description:  "4-day classic yatra from Haridwar with Guptkashi stay and Sonprayag transfer.",
			Price:        4999,
			DurationDays: 4,
			CoverImage:   "https://cdn.staykedarnath.com/storage/v1/object/public/covers/darshan.jpg",
			Active:       true,
		},
		{
			Slug:         "char-dham-express",
			Title:        "Char Dham Express",
			Description:  "10-day circuit covering Yamunotri, Gangotri, Kedarnath and Badrinath.",
			Price:        24999,
			DurationDays: 10,
			CoverImage:   "https://cdn.staykedarnath.com/storage/v1/object/public/covers/chardham.jpg",
			Active:       true,
		},
		{
			Slug:         "heli-darshan",
			Title:        "Helicopter Darshan",
			Description:  "Same-day helicopter darshan from Phata with priority temple access.",
			Price:        11500,
			DurationDays: 1,
			CoverImage:   "https://cdn.staykedarnath.com/storage/v1/object/public/covers/heli.jpg",
			Active:       true,
		},
	}
	for i := range packages {
		db.Create(&packages[i])
	}

	// ================== MESSAGE TEMPLATES ==================
	log.Println("Creating message templates...")
	db.Create(&domain.MessageTemplate{
		Tag:     "booking",
		Subject: "Booking {{booking_id}} confirmed",
		Body: "<p>Hi {{customer_name}},</p>" +
			"<p>Your booking <b>{{booking_id}}</b> for <b>{{package_name}}</b> is confirmed.</p>" +
			"<p>Travel date: {{travel_date}}. Amount paid: ₹{{amount}}.</p>" +
			"<p>Our team will reach out on WhatsApp with the day-wise plan.</p>",
		Active: true,
	})

	// ================== HELP ARTICLES ==================
	log.Println("Creating help articles...")
	articles := []domain.HelpArticle{
		{Title: "Packing checklist", Category: "preparation", Published: true,
			Body: "Carry warm layers, rain protection, a torch and a personal medical kit. Nights at Kedarnath drop below 5°C even in season."},
		{Title: "Refund and cancellation policy", Category: "payments", Published: true,
			Body: "Cancellations 7+ days before travel are refunded in full minus gateway charges. Refunds are processed within 7 working days."},
		{Title: "Helicopter bookings", Category: "travel", Published: true,
			Body: "Helicopter slots from Phata and Sirsi open 30 days ahead and sell out quickly. Weight limits apply per passenger."},
		{Title: "Registration and permits", Category: "preparation", Published: true,
			Body: "Uttarakhand yatra registration is mandatory. Carry the registration slip and a photo ID at the Sonprayag checkpoint."},
	}
	for i := range articles {
		db.Create(&articles[i])
	}

	// ================== PLUGIN FLAGS ==================
	log.Println("Creating plugin flags...")
	for name, enabled := range map[string]bool{
		"weather_widget": true,
		"news_ticker":    true,
		"price_alerts":   true,
		"whatsapp_chat":  false,
	} {
		db.Create(&domain.PluginFlag{Name: name, Enabled: enabled})
	}

	// ================== CONTENT OVERRIDES ==================
	log.Println("Creating content overrides...")
	db.Create(&domain.ContentOverride{
		PageKey:  "home",
		FieldKey: "hero_title",
		Kind:     "text",
		Value:    "Plan your Kedarnath yatra with locals who live the route",
	})

	log.Println("Seed completed")
}
