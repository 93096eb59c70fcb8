// Package initsvc - Dữ liệu seed cho directory: danh mục, doanh nghiệp và review mẫu
// khu vực Tampico / Ciudad Madero / Altamira.
package initsvc

import (
	busmodels "asteria_local/internal/api/business/models"
	catmodels "asteria_local/internal/api/category/models"
	rvmodels "asteria_local/internal/api/review/models"
)

func intPtr(n int) *int {
	return &n
}

// SeedCategories trả về 10 danh mục mặc định. Icon theo tên Lucide.
func SeedCategories() []catmodels.Category {
	return []catmodels.Category{
		{Name: "Restaurantes", Slug: "restaurantes", Icon: "Utensils", Description: "Encuentra los mejores restaurantes de la zona", IsActive: true},
		{Name: "Farmacias", Slug: "farmacias", Icon: "Pill", Description: "Farmacias y servicios de salud cercanos", IsActive: true},
		{Name: "Ferreterías", Slug: "ferreterias", Icon: "Wrench", Description: "Todo para construcción y reparaciones", IsActive: true},
		{Name: "Cafés", Slug: "cafes", Icon: "Coffee", Description: "Los mejores cafés y lugares para trabajar", IsActive: true},
		{Name: "Veterinarias", Slug: "veterinarias", Icon: "Heart", Description: "Cuidado profesional para tus mascotas", IsActive: true},
		{Name: "Tiendas", Slug: "tiendas", Icon: "ShoppingBag", Description: "Tiendas de conveniencia y retail", IsActive: true},
		{Name: "Talleres", Slug: "talleres", Icon: "Car", Description: "Talleres mecánicos y servicios automotrices", IsActive: true},
		{Name: "Salones", Slug: "salones", Icon: "Scissors", Description: "Salones de belleza y estética", IsActive: true},
		{Name: "Educación", Slug: "educacion", Icon: "GraduationCap", Description: "Centros educativos y academias", IsActive: true},
		{Name: "Inmobiliaria", Slug: "inmobiliaria", Icon: "Home", Description: "Servicios inmobiliarios y bienes raíces", IsActive: true},
	}
}

// SeedBusinesses trả về 8 doanh nghiệp mẫu — 5 featured, 3 không.
func SeedBusinesses() []busmodels.Business {
	return []busmodels.Business{
		{
			Name:        "Restaurante El Huasteco",
			Description: "Auténtica comida tradicional tamaulipeca con más de 30 años de experiencia. Especialistas en cabrito, carne asada y mariscos frescos.",
			Category:    "Restaurantes",
			Subcategory: "Comida Mexicana",
			Phone:       "+52 833 123 4567",
			Whatsapp:    "+52 833 123 4567",
			Email:       "contacto@elhuasteco.com",
			Website:     "www.elhuasteco.com",
			Address: busmodels.Address{
				Street:       "Av. Universidad #234",
				Neighborhood: "Centro",
				City:         "Tampico",
				Coordinates:  busmodels.Coordinates{Lat: 22.2354, Lng: -97.8606},
			},
			Images:           []string{"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=300&h=200&fit=crop&crop=center"},
			PriceRange:       "$$$",
			Services:         []string{"Delivery", "Pet Friendly", "Estacionamiento"},
			RatingAverage:    4.8,
			TotalReviews:     324,
			IsActive:         true,
			IsVerified:       true,
			FeaturedPosition: intPtr(1),
		},
		{
			Name:        "Café Madero",
			Description: "Coffee shop especializado en café de altura con ambiente acogedor para trabajar y relajarse. WiFi gratuito y terraza al aire libre.",
			Category:    "Cafés",
			Subcategory: "Coffee Shop",
			Phone:       "+52 833 234 5678",
			Whatsapp:    "+52 833 234 5678",
			Email:       "hola@cafemadero.com",
			Address: busmodels.Address{
				Street:       "Calle Madero #156",
				Neighborhood: "Zona Dorada",
				City:         "Tampico",
				Coordinates:  busmodels.Coordinates{Lat: 22.2486, Lng: -97.8642},
			},
			Images:           []string{"https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=300&h=200&fit=crop&crop=center"},
			PriceRange:       "$$",
			Services:         []string{"WiFi", "Terraza", "Postres"},
			RatingAverage:    4.7,
			TotalReviews:     198,
			IsActive:         true,
			IsVerified:       true,
			FeaturedPosition: intPtr(2),
		},
		{
			Name:        "Farmacia San Rafael",
			Description: "Farmacia con servicio 24 horas y delivery gratuito. Amplio surtido en medicamentos y productos de cuidado personal.",
			Category:    "Farmacias",
			Subcategory: "Farmacia General",
			Phone:       "+52 833 345 6789",
			Whatsapp:    "+52 833 345 6789",
			Email:       "info@farmaciasanrafael.com",
			Address: busmodels.Address{
				Street:       "Boulevard Altamira #789",
				Neighborhood: "Las Flores",
				City:         "Altamira",
				Coordinates:  busmodels.Coordinates{Lat: 22.2567, Lng: -97.8532},
			},
			Images:           []string{"https://images.unsplash.com/photo-1576671081837-49000212a370?w=300&h=200&fit=crop&crop=center"},
			PriceRange:       "$",
			Services:         []string{"24 Horas", "Delivery", "Consulta"},
			RatingAverage:    4.6,
			TotalReviews:     156,
			IsActive:         true,
			IsVerified:       true,
			FeaturedPosition: intPtr(3),
		},
		{
			Name:        "Veterinaria Pets Care",
			Description: "Clínica veterinaria con servicios completos: consultas, cirugías, urgencias 24hrs, estética canina y hotel para mascotas.",
			Category:    "Veterinarias",
			Subcategory: "Clínica Veterinaria",
			Phone:       "+52 833 456 7890",
			Whatsapp:    "+52 833 456 7890",
			Email:       "citas@petscare.com",
			Website:     "www.petscare.com",
			Address: busmodels.Address{
				Street:       "Av. Unidad Nacional #456",
				Neighborhood: "Unidad Nacional",
				City:         "Ciudad Madero",
				Coordinates:  busmodels.Coordinates{Lat: 22.2412, Lng: -97.8567},
			},
			Images:           []string{"https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=300&h=200&fit=crop&crop=center"},
			PriceRange:       "$$",
			Services:         []string{"Urgencias", "Estética", "Hotel", "Cirugías"},
			RatingAverage:    4.9,
			TotalReviews:     87,
			IsActive:         true,
			IsVerified:       true,
			FeaturedPosition: intPtr(4),
		},
		{
			Name:        "Ferretería El Martillo",
			Description: "Ferretería completa con más de 25 años en el mercado. Herramientas, materiales de construcción y asesoría especializada.",
			Category:    "Ferreterías",
			Subcategory: "Ferretería General",
			Phone:       "+52 833 567 8901",
			Whatsapp:    "+52 833 567 8901",
			Email:       "ventas@elmartillo.com",
			Address: busmodels.Address{
				Street:       "Calle Escolleras #321",
				Neighborhood: "Escolleras",
				City:         "Tampico",
				Coordinates:  busmodels.Coordinates{Lat: 22.2298, Lng: -97.8734},
			},
			Images:           []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=200&fit=crop&crop=center"},
			PriceRange:       "$$",
			Services:         []string{"Entrega", "Asesoría", "Crédito"},
			RatingAverage:    4.5,
			TotalReviews:     203,
			IsActive:         true,
			IsVerified:       true,
			FeaturedPosition: intPtr(5),
		},
		{
			Name:        "Taller Automotriz López",
			Description: "Taller mecánico especializado en transmisiones automáticas, frenos y servicio general. 15 años de experiencia.",
			Category:    "Talleres",
			Subcategory: "Mecánica General",
			Phone:       "+52 833 678 9012",
			Whatsapp:    "+52 833 678 9012",
			Address: busmodels.Address{
				Street:       "Av. Industrial #567",
				Neighborhood: "Industrial",
				City:         "Altamira",
				Coordinates:  busmodels.Coordinates{Lat: 22.2445, Lng: -97.8456},
			},
			Images:        []string{"https://images.unsplash.com/photo-1486262715619-67b85e0b08d3?w=300&h=200&fit=crop&crop=center"},
			PriceRange:    "$$",
			Services:      []string{"Diagnóstico", "Garantía", "Refacciones"},
			RatingAverage: 4.3,
			TotalReviews:  142,
			IsActive:      true,
		},
		{
			Name:        "Salón Belleza Total",
			Description: "Salón de belleza integral: cortes, peinados, coloración, tratamientos capilares, manicure y pedicure. Ambiente relajante.",
			Category:    "Salones",
			Subcategory: "Salón de Belleza",
			Phone:       "+52 833 789 0123",
			Whatsapp:    "+52 833 789 0123",
			Email:       "citas@bellezatotal.com",
			Address: busmodels.Address{
				Street:       "Calle Hidalgo #890",
				Neighborhood: "Centro",
				City:         "Ciudad Madero",
				Coordinates:  busmodels.Coordinates{Lat: 22.2578, Lng: -97.8623},
			},
			Images:        []string{"https://images.unsplash.com/photo-1560066984-138dadb4c035?w=300&h=200&fit=crop&crop=center"},
			PriceRange:    "$$",
			Services:      []string{"Cortes", "Color", "Manicure", "Tratamientos"},
			RatingAverage: 4.4,
			TotalReviews:  98,
			IsActive:      true,
			IsVerified:    true,
		},
		{
			Name:        "Pizzería Don Giuseppe",
			Description: "Auténtica pizza italiana con ingredientes importados. Horno de leña y ambiente familiar. También pasta fresca y ensaladas.",
			Category:    "Restaurantes",
			Subcategory: "Pizza Italiana",
			Phone:       "+52 833 890 1234",
			Whatsapp:    "+52 833 890 1234",
			Email:       "ordenes@dongiuseppe.com",
			Address: busmodels.Address{
				Street:       "Av. Ejército Mexicano #234",
				Neighborhood: "Estadio",
				City:         "Tampico",
				Coordinates:  busmodels.Coordinates{Lat: 22.2389, Lng: -97.8512},
			},
			Images:        []string{"https://images.unsplash.com/photo-1513104890138-7c749659a591?w=300&h=200&fit=crop&crop=center"},
			PriceRange:    "$$$",
			Services:      []string{"Delivery", "Para Llevar", "Terraza"},
			RatingAverage: 4.6,
			TotalReviews:  267,
			IsActive:      true,
			IsVerified:    true,
		},
	}
}

// SeedReviews trả về review mẫu — BusinessID do caller gán sau khi seed doanh nghiệp.
func SeedReviews() []rvmodels.Review {
	return []rvmodels.Review{
		{
			UserName:   "María González",
			UserEmail:  "maria.g@email.com",
			Rating:     5,
			Comment:    "Excelente comida tradicional, el cabrito está delicioso y el servicio es muy bueno. Definitivamente regresaré.",
			Images:     []string{},
			IsVerified: true,
		},
		{
			UserName:   "Carlos Méndez",
			UserEmail:  "carlos.m@email.com",
			Rating:     5,
			Comment:    "El mejor restaurante de comida regional en Tampico. Los precios son justos y las porciones generosas.",
			Images:     []string{},
			IsVerified: true,
		},
	}
}
