package main

import (
	"github.com/trymyday-shop/internal/config"
	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/logger"
	"github.com/trymyday-shop/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	seedProducts(stdLog.Printf)
	seedUsers(stdLog.Printf)
	seedHelpQuestions(stdLog.Printf)

	stdLog.Printf("Seed completed")
}

func seedProducts(logf func(format string, v ...interface{})) {
	products := []models.Product{
		{
			Name:        "iPhone 15 Pro",
			Description: "Apple iPhone 15 Pro, puce A17 Pro, appareil photo 48 Mpx.",
			Price:       models.NewMoneyFromInt(850000),
			Category:    "electronique",
			Subcategory: "telephones",
			Stock:       12,
			Images:      models.StringArray{"/uploads/products/iphone-15-pro.jpg"},
			Colors:      models.StringArray{"Titane naturel", "Titane bleu", "Noir"},
			Storages:    models.StringArray{"128 Go", "256 Go", "512 Go"},
			IsActive:    true,
			SortOrder:   100,
		},
		{
			Name:        "Samsung Galaxy S24",
			Description: "Samsung Galaxy S24, écran AMOLED 6.2\", Galaxy AI.",
			Price:       models.NewMoneyFromInt(620000),
			Category:    "electronique",
			Subcategory: "telephones",
			Stock:       20,
			Images:      models.StringArray{"/uploads/products/galaxy-s24.jpg"},
			Colors:      models.StringArray{"Noir", "Violet", "Crème"},
			Storages:    models.StringArray{"128 Go", "256 Go"},
			IsActive:    true,
			SortOrder:   95,
		},
		{
			Name:        "Casque sans fil Sony WH-1000XM5",
			Description: "Réduction de bruit de référence, 30 h d'autonomie.",
			Price:       models.NewMoneyFromInt(245000),
			Category:    "electronique",
			Subcategory: "audio",
			Stock:       35,
			Images:      models.StringArray{"/uploads/products/sony-xm5.jpg"},
			Colors:      models.StringArray{"Noir", "Argent"},
			IsActive:    true,
			SortOrder:   80,
		},
		{
			Name:        "Robe wax traditionnelle",
			Description: "Robe en tissu wax, coupe moderne, confection locale.",
			Price:       models.NewMoneyFromInt(35000),
			Category:    "mode",
			Subcategory: "femmes",
			Stock:       50,
			Images:      models.StringArray{"/uploads/products/robe-wax.jpg"},
			Colors:      models.StringArray{"Bleu", "Orange", "Vert"},
			Sizes:       models.StringArray{"S", "M", "L", "XL"},
			IsActive:    true,
			SortOrder:   70,
		},
		{
			Name:        "Baskets urbaines",
			Description: "Baskets légères et respirantes pour tous les jours.",
			Price:       models.NewMoneyFromInt(28000),
			Category:    "mode",
			Subcategory: "chaussures",
			Stock:       40,
			Images:      models.StringArray{"/uploads/products/baskets.jpg"},
			Colors:      models.StringArray{"Blanc", "Noir"},
			Sizes:       models.StringArray{"39", "40", "41", "42", "43", "44"},
			IsActive:    true,
			SortOrder:   60,
		},
		{
			Name:        "Mixeur multifonction 1000W",
			Description: "Mixeur puissant avec bol en verre 1.5 L et 3 vitesses.",
			Price:       models.NewMoneyFromInt(42000),
			Category:    "maison",
			Subcategory: "electromenager",
			Stock:       25,
			Images:      models.StringArray{"/uploads/products/mixeur.jpg"},
			IsActive:    true,
			SortOrder:   50,
		},
		{
			Name:        "Montre connectée FitTrack",
			Description: "Suivi d'activité, fréquence cardiaque, 7 jours d'autonomie.",
			Price:       models.NewMoneyFromInt(55000),
			Category:    "electronique",
			Subcategory: "accessoires",
			Stock:       0,
			Images:      models.StringArray{"/uploads/products/fittrack.jpg"},
			Colors:      models.StringArray{"Noir", "Rose"},
			IsActive:    false,
			SortOrder:   40,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				logf("Failed to create product %s: %v", product.Name, err)
				continue
			}
			logf("Created product: %s", product.Name)
			continue
		}
		logf("Product already exists: %s", product.Name)
	}
}

func seedUsers(logf func(format string, v ...interface{})) {
	demoUsers := []struct {
		Name     string
		Email    string
		Password string
		Role     string
	}{
		{Name: "Awa Diop", Email: "awa@example.com", Password: "awa12345", Role: constants.UserRoleClient},
		{Name: "Moussa Ndiaye", Email: "moussa@example.com", Password: "moussa123", Role: constants.UserRoleClient},
		{Name: "Fatou Sarr", Email: "fatou@trymyday.local", Password: "fatou123", Role: constants.UserRoleManager},
	}

	for _, demo := range demoUsers {
		var existing models.User
		if err := models.DB.Where("email = ?", demo.Email).First(&existing).Error; err == nil {
			logf("User already exists: %s", demo.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.DefaultCost)
		if err != nil {
			logf("Failed to hash password for %s: %v", demo.Email, err)
			continue
		}
		user := models.User{
			Name:         demo.Name,
			Email:        demo.Email,
			PasswordHash: string(hash),
			Role:         demo.Role,
			Status:       constants.UserStatusActive,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			logf("Failed to create user %s: %v", demo.Email, err)
			continue
		}
		logf("Created user: %s (%s)", demo.Email, demo.Role)
	}
}

func seedHelpQuestions(logf func(format string, v ...interface{})) {
	questions := []models.HelpQuestion{
		{
			Question: "Quels sont les délais de livraison ?",
			Answer:   "Les commandes sont livrées sous 2 à 5 jours ouvrés à Dakar et sous 7 jours en région.",
			UserName: "TRYMYDAY",
			Status:   constants.HelpQuestionStatusApproved,
		},
		{
			Question: "Comment utiliser un code promo ?",
			Answer:   "Saisissez votre code dans le panier avant de valider la commande, la réduction s'applique immédiatement.",
			UserName: "TRYMYDAY",
			Status:   constants.HelpQuestionStatusApproved,
		},
		{
			Question: "Puis-je payer à la livraison ?",
			Answer:   "Oui, le paiement à la livraison est disponible en plus du portefeuille TRYMYDAY.",
			UserName: "TRYMYDAY",
			Status:   constants.HelpQuestionStatusApproved,
		},
	}

	for _, question := range questions {
		var existing models.HelpQuestion
		if err := models.DB.Where("question = ?", question.Question).First(&existing).Error; err == nil {
			logf("Help question already exists: %s", question.Question)
			continue
		}
		if err := models.DB.Create(&question).Error; err != nil {
			logf("Failed to create help question: %v", err)
			continue
		}
		logf("Created help question: %s", question.Question)
	}
}
