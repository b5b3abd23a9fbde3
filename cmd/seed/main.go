package main

import (
	"fmt"

	"github.com/supply-hub/supply-hub/internal/config"
	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/logger"
	"github.com/supply-hub/supply-hub/internal/models"

	"github.com/shopspring/decimal"
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

	// 添加演示账号
	users := []struct {
		Email     string
		Password  string
		FirstName string
		LastName  string
		Roles     []string
	}{
		{Email: "admin@example.com", Password: "admin123", FirstName: "Admin", LastName: "User", Roles: []string{constants.RoleAdmin, constants.RoleUser}},
		{Email: "employee@example.com", Password: "employee123", FirstName: "Jane", LastName: "Smith", Roles: []string{constants.RoleUser}},
	}

	for _, u := range users {
		var existing models.User
		if err := models.DB.Where("lower(email) = ?", u.Email).First(&existing).Error; err == nil {
			stdLog.Printf("User already exists: %s", u.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", u.Email, err)
			continue
		}
		user := models.User{
			Email:        u.Email,
			PasswordHash: string(hash),
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Roles:        models.StringArray(u.Roles),
			IsActive:     true,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", u.Email, err)
		} else {
			stdLog.Printf("Created user: %s", u.Email)
		}
	}

	// 添加供应商
	suppliers := []models.Supplier{
		{
			Name:         "PackRight B.V.",
			Email:        "orders@packright.nl",
			CCEmails:     models.StringArray([]string{"sales@packright.nl"}),
			ArticleGroup: constants.ArticleGroupPackaging,
			IsActive:     true,
		},
		{
			Name:         "LabelPro International",
			Email:        "info@labelpro.com",
			ArticleGroup: constants.ArticleGroupLabels,
			IsActive:     true,
		},
		{
			Name:         "TapeMasters GmbH",
			Email:        "bestellungen@tapemasters.de",
			ArticleGroup: constants.ArticleGroupTape,
			IsActive:     true,
		},
		{
			Name:         "Euro Pallets Co.",
			Email:        "orders@europallets.eu",
			CCEmails:     models.StringArray([]string{"logistics@europallets.eu"}),
			ArticleGroup: constants.ArticleGroupPallets,
			IsActive:     true,
		},
	}

	supplierIDs := map[string]uint{}
	for _, sup := range suppliers {
		var existing models.Supplier
		if err := models.DB.Where("name = ?", sup.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&sup).Error; err != nil {
				stdLog.Printf("Failed to create supplier %s: %v", sup.Name, err)
				continue
			}
			stdLog.Printf("Created supplier: %s", sup.Name)
			supplierIDs[sup.Name] = sup.ID
		} else {
			stdLog.Printf("Supplier already exists: %s", sup.Name)
			supplierIDs[sup.Name] = existing.ID
		}
	}

	// 添加商品类型
	typeNames := []string{"Label", "Sleeve", "Box", "Tape", "Pallet wrap", "Other"}
	typeIDs := map[string]uint{}
	for _, name := range typeNames {
		var existing models.ProductType
		if err := models.DB.Where("name = ?", name).First(&existing).Error; err != nil {
			productType := models.ProductType{Name: name, IsActive: true}
			if err := models.DB.Create(&productType).Error; err != nil {
				stdLog.Printf("Failed to create product type %s: %v", name, err)
				continue
			}
			stdLog.Printf("Created product type: %s", name)
			typeIDs[name] = productType.ID
		} else {
			stdLog.Printf("Product type already exists: %s", name)
			typeIDs[name] = existing.ID
		}
	}

	// 添加商品
	intPtr := func(v int) *int { return &v }
	typeIDPtr := func(name string) *uint {
		if id, ok := typeIDs[name]; ok && id != 0 {
			return &id
		}
		return nil
	}
	moneyPtr := func(v float64) *models.Money {
		m := models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
		return &m
	}

	products := []models.Product{
		{Name: "Cardboard Box 40x30x20", ArticleCode: "PKG-001", SupplierID: supplierIDs["PackRight B.V."], ProductTypeID: typeIDPtr("Box"), UnitsPerBox: intPtr(50), UnitsPerPallet: intPtr(600), PricePerUnit: moneyPtr(1.25), IsActive: true},
		{Name: "Cardboard Box 60x40x30", ArticleCode: "PKG-002", SupplierID: supplierIDs["PackRight B.V."], ProductTypeID: typeIDPtr("Box"), UnitsPerBox: intPtr(25), UnitsPerPallet: intPtr(300), PricePerUnit: moneyPtr(2.50), IsActive: true},
		{Name: "Bubble Wrap Roll 100m", ArticleCode: "PKG-003", SupplierID: supplierIDs["PackRight B.V."], ProductTypeID: typeIDPtr("Pallet wrap"), UnitsPerBox: intPtr(4), PricePerUnit: moneyPtr(15.00), IsActive: true},
		{Name: "Shipping Label A6", ArticleCode: "LBL-001", SupplierID: supplierIDs["LabelPro International"], ProductTypeID: typeIDPtr("Label"), UnitsPerBox: intPtr(1000), UnitsPerPallet: intPtr(20000), PricePerUnit: moneyPtr(0.03), IsActive: true},
		{Name: "Product Label 50x30mm", ArticleCode: "LBL-002", SupplierID: supplierIDs["LabelPro International"], ProductTypeID: typeIDPtr("Label"), UnitsPerBox: intPtr(5000), PricePerUnit: moneyPtr(0.02), IsActive: true},
		{Name: "Fragile Sticker", ArticleCode: "LBL-003", SupplierID: supplierIDs["LabelPro International"], ProductTypeID: typeIDPtr("Label"), UnitsPerBox: intPtr(500), PricePerUnit: moneyPtr(0.05), IsActive: true},
		{Name: "Packing Tape 50mm x 66m", ArticleCode: "TPE-001", SupplierID: supplierIDs["TapeMasters GmbH"], ProductTypeID: typeIDPtr("Tape"), UnitsPerBox: intPtr(36), UnitsPerPallet: intPtr(1440), PricePerUnit: moneyPtr(1.80), IsActive: true},
		{Name: "Printed Tape \"FRAGILE\"", ArticleCode: "TPE-002", SupplierID: supplierIDs["TapeMasters GmbH"], ProductTypeID: typeIDPtr("Tape"), UnitsPerBox: intPtr(36), PricePerUnit: moneyPtr(2.50), IsActive: true},
		{Name: "Euro Pallet 120x80cm", ArticleCode: "PLT-001", SupplierID: supplierIDs["Euro Pallets Co."], UnitsPerPallet: intPtr(1), PricePerUnit: moneyPtr(12.00), IsActive: true},
		{Name: "Quarter Pallet 60x40cm", ArticleCode: "PLT-002", SupplierID: supplierIDs["Euro Pallets Co."], UnitsPerPallet: intPtr(1), PricePerUnit: moneyPtr(6.50), IsActive: true},
	}

	for _, prod := range products {
		if prod.SupplierID == 0 {
			stdLog.Printf("Skip product %s: supplier missing", prod.ArticleCode)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("article_code = ?", prod.ArticleCode).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.ArticleCode, err)
			} else {
				stdLog.Printf("Created product: %s", prod.ArticleCode)
			}
		} else {
			stdLog.Printf("Product already exists: %s", prod.ArticleCode)
		}
	}

	fmt.Println("\nSeed completed!")
	fmt.Println("Demo accounts:")
	fmt.Println("  Admin:    admin@example.com / admin123")
	fmt.Println("  Employee: employee@example.com / employee123")
}
