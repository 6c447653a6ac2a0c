// Package seed holds the sample checklist and venue catalogue every new
// planner starts with.
package seed

import (
	"github.com/google/uuid"

	"weddingplanner/domain/entity"
)

// stableID derives a deterministic id so repeated seeding is idempotent
func stableID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("weddingplanner:"+kind+":"+name)).String()
}

func task(title, description, category string, priority entity.Priority) entity.Task {
	return entity.Task{
		ID:          stableID("task", title),
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
	}
}

// Tasks returns the default wedding checklist
func Tasks() []entity.Task {
	return []entity.Task{
		task("Book Wedding Venue", "Find and book the perfect venue for your special day", "Venue", entity.PriorityHigh),
		task("Hire Wedding Photographer", "Book a professional photographer to capture memories", "Photography", entity.PriorityHigh),
		task("Select Catering Service", "Choose menu and catering service for the wedding", "Catering", entity.PriorityHigh),
		task("Plan Mehendi Ceremony", "Organize mehendi ceremony and book mehendi artist", "Ceremonies", entity.PriorityMedium),
		task("Plan Sangeet Event", "Organize sangeet ceremony with music and dance", "Ceremonies", entity.PriorityMedium),
		task("Book Honeymoon Package", "Plan and book honeymoon destination and accommodation", "Travel", entity.PriorityMedium),
		task("Order Wedding Invitations", "Design and order wedding invitation cards", "Invitations", entity.PriorityHigh),
		task("Wedding Dress Shopping", "Find and purchase wedding dress and accessories", "Attire", entity.PriorityHigh),
		task("Book Florist", "Select and book florist for wedding decorations", "Decoration", entity.PriorityMedium),
		task("Arrange Transportation", "Book cars/transportation for wedding day", "Transportation", entity.PriorityMedium),
	}
}

// Venues returns the sample venue catalogue
func Venues() []entity.Venue {
	venues := []entity.Venue{
		{
			Name:          "Royal Palace Gardens",
			Location:      "Mumbai, Maharashtra",
			PriceRange:    "₹2,00,000 - ₹5,00,000",
			Capacity:      "200-500 guests",
			Description:   "Luxurious palace-style venue with beautiful gardens",
			Amenities:     entity.StringList{"AC Halls", "Garden Area", "Parking", "Catering", "Decoration"},
			Rating:        4.8,
			ContactNumber: "+91 98765 43210",
			Email:         "bookings@royalpalace.com",
		},
		{
			Name:          "Sunset Beach Resort",
			Location:      "Goa",
			PriceRange:    "₹3,00,000 - ₹8,00,000",
			Capacity:      "150-300 guests",
			Description:   "Beachside resort perfect for destination weddings",
			Amenities:     entity.StringList{"Beach Access", "Resort Accommodation", "Catering", "Photography"},
			Rating:        4.9,
			ContactNumber: "+91 87654 32109",
			Email:         "events@sunsetbeach.com",
		},
		{
			Name:          "Heritage Haveli",
			Location:      "Rajasthan",
			PriceRange:    "₹1,50,000 - ₹4,00,000",
			Capacity:      "100-400 guests",
			Description:   "Traditional Rajasthani haveli with royal ambiance",
			Amenities:     entity.StringList{"Royal Architecture", "Traditional Decor", "Folk Performances", "Catering"},
			Rating:        4.7,
			ContactNumber: "+91 76543 21098",
			Email:         "bookings@heritagehaveli.com",
		},
		{
			Name:          "Crystal Banquet Hall",
			Location:      "Delhi",
			PriceRange:    "₹1,00,000 - ₹3,00,000",
			Capacity:      "250-600 guests",
			Description:   "Modern banquet hall with crystal chandeliers",
			Amenities:     entity.StringList{"AC Halls", "LED Lighting", "Stage Setup", "Parking", "Catering"},
			Rating:        4.5,
			ContactNumber: "+91 65432 10987",
			Email:         "info@crystalbanquet.com",
		},
		{
			Name:          "Garden Paradise Resort",
			Location:      "Kerala",
			PriceRange:    "₹2,50,000 - ₹6,00,000",
			Capacity:      "100-350 guests",
			Description:   "Tropical paradise with lush gardens and backwaters",
			Amenities:     entity.StringList{"Garden Views", "Backwater Access", "Ayurvedic Spa", "Traditional Cuisine"},
			Rating:        4.8,
			ContactNumber: "+91 54321 09876",
			Email:         "weddings@gardenparadise.com",
		},
		{
			Name:          "Metropolitan Grand Hotel",
			Location:      "Bangalore",
			PriceRange:    "₹1,80,000 - ₹4,50,000",
			Capacity:      "200-500 guests",
			Description:   "Luxury hotel with modern amenities in the city center",
			Amenities:     entity.StringList{"5-Star Service", "Multiple Halls", "Hotel Rooms", "Fine Dining"},
			Rating:        4.6,
			ContactNumber: "+91 43210 98765",
			Email:         "events@metrogrand.com",
		},
		{
			Name:          "Hillside Manor",
			Location:      "Shimla, Himachal Pradesh",
			PriceRange:    "₹1,20,000 - ₹3,50,000",
			Capacity:      "80-250 guests",
			Description:   "Scenic hillside venue with mountain views",
			Amenities:     entity.StringList{"Mountain Views", "Outdoor Ceremony Area", "Cozy Interiors", "Local Cuisine"},
			Rating:        4.4,
			ContactNumber: "+91 32109 87654",
			Email:         "bookings@hillsidemanor.com",
		},
		{
			Name:          "Urban Rooftop Venue",
			Location:      "Pune, Maharashtra",
			PriceRange:    "₹90,000 - ₹2,50,000",
			Capacity:      "100-300 guests",
			Description:   "Modern rooftop venue with city skyline views",
			Amenities:     entity.StringList{"Rooftop Access", "City Views", "Modern Decor", "DJ Setup"},
			Rating:        4.3,
			ContactNumber: "+91 21098 76543",
			Email:         "events@urbanrooftop.com",
		},
		{
			Name:          "Riverside Retreat",
			Location:      "Rishikesh, Uttarakhand",
			PriceRange:    "₹1,60,000 - ₹4,20,000",
			Capacity:      "120-280 guests",
			Description:   "Peaceful riverside venue perfect for intimate weddings",
			Amenities:     entity.StringList{"River Views", "Adventure Activities", "Yoga Sessions", "Organic Food"},
			Rating:        4.7,
			ContactNumber: "+91 10987 65432",
			Email:         "weddings@riversideretreat.com",
		},
		{
			Name:          "Desert Oasis Resort",
			Location:      "Jaisalmer, Rajasthan",
			PriceRange:    "₹2,20,000 - ₹5,50,000",
			Capacity:      "150-400 guests",
			Description:   "Exotic desert resort with camel safari and cultural performances",
			Amenities:     entity.StringList{"Desert Safari", "Cultural Shows", "Traditional Tents", "Rajasthani Cuisine"},
			Rating:        4.9,
			ContactNumber: "+91 09876 54321",
			Email:         "bookings@desertoasis.com",
		},
	}

	for i := range venues {
		venues[i].ID = stableID("venue", venues[i].Name)
	}
	return venues
}
