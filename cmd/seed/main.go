package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"openland/internal/database"
	"openland/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "openland.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM consultation_requests")
	db.Exec("DELETE FROM documents")
	db.Exec("DELETE FROM land_media")
	db.Exec("DELETE FROM lands")
	db.Exec("DELETE FROM site_settings")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@openland.dz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		FullName:     "مدير الموقع",
		IsVerified:   true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@openland.dz / admin123")

	sellers := []domain.User{}
	sellerEmails := []string{"karim@gmail.com", "amina@gmail.com", "yacine@gmail.com"}
	sellerNames := []string{"كريم بوعلام", "أمينة صحراوي", "ياسين مرابط"}
	for i, email := range sellerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("seller123"), bcrypt.DefaultCost)
		seller := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleSeller,
			FullName:     sellerNames[i],
			Phone:        fmt.Sprintf("+21355512345%d", i),
			IsVerified:   true,
		}
		db.Create(&seller)
		sellers = append(sellers, seller)
	}

	buyerHash, _ := bcrypt.GenerateFromPassword([]byte("buyer123"), bcrypt.DefaultCost)
	buyer := domain.User{
		Email:        "samir@gmail.com",
		PasswordHash: string(buyerHash),
		Role:         domain.RoleBuyer,
		FullName:     "سمير حداد",
		IsVerified:   true,
	}
	db.Create(&buyer)

	// ================== LANDS ==================
	log.Println("Creating lands...")

	lat1, lng1 := 36.7538, 3.0588
	lat2, lng2 := 35.6971, -0.6308

	lands := []domain.Land{
		{
			OwnerID:     sellers[0].ID,
			Title:       "أرض فلاحية خصبة قرب البليدة",
			Description: "أرض فلاحية مسقية بمساحة كبيرة، صالحة لزراعة الحمضيات والخضروات.",
			Price:       12500000,
			AreaM2:      25000,
			Type:        domain.LandAgricultural,
			ServiceType: domain.ServiceSale,
			Wilaya:      "البليدة",
			Baladia:     "موزاية",
			Status:      domain.StatusVerified,
		},
		{
			OwnerID:     sellers[0].ID,
			Title:       "قطعة أرض سكنية في الجزائر العاصمة",
			Description: "قطعة أرض في حي هادئ قريبة من جميع المرافق.",
			Price:       45000000,
			AreaM2:      400,
			Type:        domain.LandPrivate,
			ServiceType: domain.ServiceSale,
			Wilaya:      "الجزائر",
			Baladia:     "الدرارية",
			Lat:         &lat1,
			Lng:         &lng1,
			Status:      domain.StatusVerified,
		},
		{
			OwnerID:     sellers[1].ID,
			Title:       "أرض فلاحية للكراء في وهران",
			Description: "أرض فلاحية للكراء الموسمي، مجهزة بنظام سقي بالتقطير.",
			Price:       800000,
			AreaM2:      15000,
			Type:        domain.LandAgricultural,
			ServiceType: domain.ServiceRent,
			Wilaya:      "وهران",
			Baladia:     "السانية",
			Lat:         &lat2,
			Lng:         &lng2,
			Status:      domain.StatusPending,
		},
		{
			OwnerID:         sellers[2].ID,
			Title:           "أرض امتياز فلاحي في أدرار",
			Description:     "أرض امتياز واسعة صالحة للزراعة الصحراوية.",
			Price:           5000000,
			AreaM2:          100000,
			Type:            domain.LandConcession,
			ServiceType:     domain.ServiceSale,
			Wilaya:          "أدرار",
			Baladia:         "رقان",
			Status:          domain.StatusRejected,
			RejectionReason: "وثائق الملكية غير واضحة، يرجى إعادة رفع عقد الامتياز.",
		},
	}
	for i := range lands {
		db.Create(&lands[i])
	}

	// ================== SETTINGS ==================
	log.Println("Creating site settings...")

	settings := map[string]string{
		"office_phone":    "+213555000111",
		"office_whatsapp": "+213555000111",
		"office_email":    "contact@openland.dz",
		"office_address":  "حي 1 نوفمبر، البليدة، الجزائر",
	}
	for k, v := range settings {
		db.Create(&domain.SiteSetting{Key: k, Value: v})
	}

	log.Println("Seed complete.")
}
