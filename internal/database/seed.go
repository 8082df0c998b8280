package database

import (
	"context"
	"fmt"
	"time"

	"realestate-listings/internal/models"
)

type seedListing struct {
	hoursAgo int
	input    models.PropertyInput
}

func intPtr(v int) *int { return &v }

func unsplash(ids ...string) []string {
	urls := make([]string, len(ids))
	for i, id := range ids {
		urls[i] = "https://images.unsplash.com/photo-" + id + "?w=800&q=80"
	}
	return urls
}

// SeedIfEmpty inserts the launch catalogue when the store has no listings.
// It returns the number of records inserted.
func SeedIfEmpty(ctx context.Context, store PropertyStore, now time.Time) (int, error) {
	existing, err := store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list before seeding: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	listings := seedListings()
	for i, l := range listings {
		listed := now.Add(-time.Duration(l.hoursAgo) * time.Hour)
		in := l.input
		in.DateListed = &listed
		if _, err := store.Insert(ctx, in); err != nil {
			return i, fmt.Errorf("seed %q: %w", in.Title, err)
		}
	}
	return len(listings), nil
}

func seedListings() []seedListing {
	return []seedListing{
		// Land
		{30, models.PropertyInput{
			Type:        models.PropertyTypeLand,
			Title:       "Prime Agricultural Land Near Cheyyar",
			Description: "Excellent agricultural land with rich soil, perfect for farming and cultivation. Located in a peaceful area with easy access to main road. Water source available. Clear title and ready for immediate purchase. Ideal for organic farming or traditional crops.",
			Price:       2500000, PriceType: models.PriceTypeSale,
			SizeValue: 2.5, SizeUnit: models.SizeUnitAcres,
			Address:  "Vengikkal Village Road, Near Bypass",
			Latitude: 12.6589, Longitude: 79.5432,
			Images:      unsplash("1500382017468-9049fed747ef", "1625246333195-78d9c38ad449", "1560493676-04071c5f467b", "1625246376548-8a6e55efb5ec"),
			Features:    []string{"Fertile Soil", "Water Access", "Road Frontage", "Clear Title", "Fenced"},
			ContactName: "Rajesh Kumar", ContactPhone: "+91 98765 43210",
		}},
		{120, models.PropertyInput{
			Type:        models.PropertyTypeLand,
			Title:       "Residential Plot in Developing Area",
			Description: "Well-located residential plot in a rapidly developing neighborhood. Perfect for building your dream home. Electricity and water connections available. Wide road access and surrounded by modern houses. Great investment opportunity with high appreciation potential.",
			Price:       1800000, PriceType: models.PriceTypeSale,
			SizeValue: 1200, SizeUnit: models.SizeUnitSqft,
			Address:  "Gandhi Nagar, 2nd Cross Street",
			Latitude: 12.6612, Longitude: 79.5389,
			Images:      unsplash("1513584684374-8bab748fbf90", "1512917774080-9991f1c4c750", "1518780664697-55e3ad937233", "1523217582562-09d0def993a6"),
			Features:    []string{"Electricity Available", "Water Connection", "Wide Road", "Residential Zone", "DTCP Approved"},
			ContactName: "Meena Devi", ContactPhone: "+91 99876 54321",
		}},
		{250, models.PropertyInput{
			Type:        models.PropertyTypeLand,
			Title:       "5 Acres Farmland with Bore Well",
			Description: "Spacious farmland ideal for agriculture with an existing bore well providing ample water supply. Rich red soil suitable for multiple crops. Peaceful location away from city noise. Power connection available. Perfect for serious farmers or agricultural projects.",
			Price:       5000000, PriceType: models.PriceTypeSale,
			SizeValue: 5, SizeUnit: models.SizeUnitAcres,
			Address:  "Melrosapuram Village, Near Temple",
			Latitude: 12.6701, Longitude: 79.5512,
			Images:      unsplash("1574943320219-553eb213f72d", "1605000797499-95a51c5269ae", "1625246333195-78d9c38ad449", "1464226184884-fa280b87c399"),
			Features:    []string{"Bore Well", "Power Connection", "Red Soil", "Peaceful Location", "Good Drainage"},
			ContactName: "Subramaniam", ContactPhone: "+91 97654 32109",
		}},
		{72, models.PropertyInput{
			Type:        models.PropertyTypeLand,
			Title:       "Corner Plot Near Main Road",
			Description: "Premium corner plot with excellent visibility and accessibility. Suitable for commercial or residential use. All amenities nearby including schools, hospitals, and markets. Rapid development in the area. Great for building a home or small business.",
			Price:       3200000, PriceType: models.PriceTypeSale,
			SizeValue: 1800, SizeUnit: models.SizeUnitSqft,
			Address:  "Main Road Junction, Arani Highway",
			Latitude: 12.6578, Longitude: 79.5401,
			Images:      unsplash("1486406146926-c627a92ad1ab", "1516156008625-3a9d6067fab5", "1582407947304-fd86f028f716", "1448630360428-65456885c650"),
			Features:    []string{"Corner Plot", "Main Road Access", "All Amenities Nearby", "Commercial Potential", "Level Ground"},
			ContactName: "Lakshmi Narayanan", ContactPhone: "+91 96543 21098",
		}},
		{400, models.PropertyInput{
			Type:        models.PropertyTypeLand,
			Title:       "Agricultural Land with Coconut Grove",
			Description: "Productive agricultural land with established coconut plantation. Generating steady income from coconut harvest. Includes small farm house and storage shed. Regular water supply from nearby canal. Perfect for someone looking for an income-generating property.",
			Price:       4500000, PriceType: models.PriceTypeSale,
			SizeValue: 3.5, SizeUnit: models.SizeUnitAcres,
			Address:  "Periyakulam Road, Near Canal",
			Latitude: 12.6523, Longitude: 79.5478,
			Images:      unsplash("1558618666-fcd25c85cd64", "1587293852726-70cdb56c2866", "1598512329080-16fc8f9f5a0e", "1518531933037-91b2f5f229cc"),
			Features:    []string{"Coconut Plantation", "Farm House", "Storage Shed", "Canal Water", "Income Generating"},
			ContactName: "Venkatesh", ContactPhone: "+91 95432 10987",
		}},

		// Rentals
		{6, models.PropertyInput{
			Type:        models.PropertyTypeRental,
			Title:       "Spacious 2BHK House for Rent",
			Description: "Well-maintained independent house with 2 bedrooms and 2 bathrooms. Fully furnished with modern amenities. Quiet residential neighborhood with parking facility. Close to schools, markets, and bus stand. Suitable for small families.",
			Price:       8000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 900, SizeUnit: models.SizeUnitSqft,
			Address:  "Nehru Street, Central Cheyyar",
			Latitude: 12.6598, Longitude: 79.5423,
			Images:      unsplash("1568605114967-8130f3a36994", "1600596542815-ffad4c1539a9", "1600607687939-ce8a6c25118c", "1600607687644-aac4c3eac7f4"),
			Features:    []string{"Fully Furnished", "Parking Available", "24/7 Water Supply", "Power Backup", "Safe Neighborhood"},
			Bedrooms:    intPtr(2), Bathrooms: intPtr(2),
			ContactName: "Priya Sharma", ContactPhone: "+91 94321 09876",
		}},
		{48, models.PropertyInput{
			Type:        models.PropertyTypeRental,
			Title:       "Modern 3BHK Apartment",
			Description: "Luxurious 3 bedroom apartment in a gated community. Premium fittings and fixtures. Clubhouse, gym, and children's play area. Covered parking and security services. Excellent ventilation and natural lighting. Perfect for families looking for comfortable living.",
			Price:       15000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 1400, SizeUnit: models.SizeUnitSqft,
			Address:  "Lake View Apartments, Bypass Road",
			Latitude: 12.6645, Longitude: 79.5356,
			Images:      unsplash("1502672260266-1c1ef2d93688", "1560448204-e02f11c3d0e2", "1600607687920-4e2a09cf159d", "1600566753086-00f18fb6b3ea"),
			Features:    []string{"Gated Community", "Clubhouse", "Gym", "Security", "Covered Parking", "Play Area"},
			Bedrooms:    intPtr(3), Bathrooms: intPtr(2),
			ContactName: "Arun Patel", ContactPhone: "+91 93210 98765",
		}},
		{200, models.PropertyInput{
			Type:        models.PropertyTypeRental,
			Title:       "Affordable 1BHK for Single/Couple",
			Description: "Cozy 1 bedroom apartment perfect for singles or couples. Semi-furnished with basic amenities. Good connectivity to main areas. Safe and peaceful locality. Regular water supply and power backup. Budget-friendly option in prime location.",
			Price:       5000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 550, SizeUnit: models.SizeUnitSqft,
			Address:  "Anna Nagar, 4th Street",
			Latitude: 12.6621, Longitude: 79.5445,
			Images:      unsplash("1522708323590-d24dbb6b0267", "1554995207-c18c203602cb", "1600607687939-ce8a6c25118c", "1493809842364-78817add7ffb"),
			Features:    []string{"Semi-Furnished", "Water Supply", "Power Backup", "Good Connectivity", "Safe Area"},
			Bedrooms:    intPtr(1), Bathrooms: intPtr(1),
			ContactName: "Divya Krishnan", ContactPhone: "+91 92109 87654",
		}},
		{96, models.PropertyInput{
			Type:        models.PropertyTypeRental,
			Title:       "Family Home with Garden",
			Description: "Beautiful independent house with spacious rooms and a lovely garden. Traditional architecture with modern amenities. Large kitchen and dining area. Separate servant quarters. Peaceful environment ideal for families. Pet-friendly property.",
			Price:       18000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 1800, SizeUnit: models.SizeUnitSqft,
			Address:  "Gandhi Road, Green Park Colony",
			Latitude: 12.6567, Longitude: 79.5467,
			Images:      unsplash("1564013799919-ab600027ffc6", "1600585154340-be6161a56a0c", "1600607687644-c7171b42498b", "1600585154526-990dced4db0d"),
			Features:    []string{"Garden", "Pet Friendly", "Servant Quarters", "Traditional Design", "Spacious Rooms"},
			Bedrooms:    intPtr(4), Bathrooms: intPtr(3),
			ContactName: "Karthik Raman", ContactPhone: "+91 91098 76543",
		}},
		{320, models.PropertyInput{
			Type:        models.PropertyTypeRental,
			Title:       "Budget Studio Apartment",
			Description: "Compact and efficient studio apartment perfect for students or working professionals. Includes basic furniture and kitchen setup. Located near educational institutions and IT parks. Public transport readily available. Affordable monthly rent with flexible lease terms.",
			Price:       4000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 400, SizeUnit: models.SizeUnitSqft,
			Address:  "College Road, Near Bus Stand",
			Latitude: 12.6634, Longitude: 79.5412,
			Images:      unsplash("1560184897-ae75f418493e", "1522771739844-6a9f6d5f14af", "1536376072261-38c75010e6c9", "1595526114035-0d45ed16cfbf"),
			Features:    []string{"Furnished", "Near College", "Public Transport", "WiFi Ready", "Flexible Lease"},
			Bedrooms:    intPtr(1), Bathrooms: intPtr(1),
			ContactName: "Anitha Sundaram", ContactPhone: "+91 90987 65432",
		}},
		{12, models.PropertyInput{
			Type:        models.PropertyTypeRental,
			Title:       "Luxury 3BHK Penthouse",
			Description: "Premium penthouse with stunning views and top-of-the-line amenities. Modular kitchen with imported fittings. Private terrace garden. Covered parking for 2 vehicles. Swimming pool and gym access. Perfect for those seeking luxury living.",
			Price:       25000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 2000, SizeUnit: models.SizeUnitSqft,
			Address:  "Sky Heights, Bypass Road",
			Latitude: 12.6656, Longitude: 79.5378,
			Images:      unsplash("1512917774080-9991f1c4c750", "1600585154363-67eb9e2e2099", "1600566753190-17f0baa2a6c3", "1600607687939-ce8a6c25118c"),
			Features:    []string{"Penthouse", "Terrace Garden", "Swimming Pool", "Modular Kitchen", "Premium Fittings", "2 Parking"},
			Bedrooms:    intPtr(3), Bathrooms: intPtr(3),
			ContactName: "Vijay Kumar", ContactPhone: "+91 89876 54321",
		}},

		// Retail
		{24, models.PropertyInput{
			Type:        models.PropertyTypeRetail,
			Title:       "Prime Retail Space on Main Road",
			Description: "Excellent commercial space in high-traffic location. Ground floor with large display windows. Perfect for retail showroom, boutique, or restaurant. Ample parking space available. Well-maintained building with modern amenities. Great visibility from main road.",
			Price:       45000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 1200, SizeUnit: models.SizeUnitSqft,
			Address:  "Main Bazaar Road, Central Market",
			Latitude: 12.6601, Longitude: 79.5418,
			Images:      unsplash("1441984904996-e0b6ba687e04", "1567696911980-2eed69a46042", "1528698827591-e19ccd7bc23d", "1555529669-e69e7aa0ba9a"),
			Features:    []string{"Main Road Location", "Display Windows", "Parking Available", "High Traffic", "Modern Building"},
			ContactName: "Ganesh Traders", ContactPhone: "+91 88765 43210",
		}},
		{500, models.PropertyInput{
			Type:        models.PropertyTypeRetail,
			Title:       "Commercial Building for Sale",
			Description: "3-story commercial building suitable for offices, showrooms, or educational institution. Each floor approximately 2000 sqft. Elevator installed. Ample parking space. Located in commercial zone with good connectivity. Excellent investment opportunity with high rental potential.",
			Price:       15000000, PriceType: models.PriceTypeSale,
			SizeValue: 6000, SizeUnit: models.SizeUnitSqft,
			Address:  "Commercial Complex, Arani Road",
			Latitude: 12.6589, Longitude: 79.5398,
			Images:      unsplash("1486406146926-c627a92ad1ab", "1497366216548-37526070297c", "1497366811353-6870744d04b2", "1497215842964-222b430dc094"),
			Features:    []string{"3 Floors", "Elevator", "Parking Space", "Commercial Zone", "Investment Opportunity"},
			ContactName: "Murugan Enterprises", ContactPhone: "+91 87654 32109",
		}},
		{150, models.PropertyInput{
			Type:        models.PropertyTypeRetail,
			Title:       "Shop Space in Shopping Complex",
			Description: "Modern shop in newly constructed shopping complex. Ready to move in with basic electrical and plumbing. Central air conditioning. Ideal for clothing store, electronics shop, or food outlet. Part of established retail hub with good footfall.",
			Price:       20000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 600, SizeUnit: models.SizeUnitSqft,
			Address:  "City Centre Mall, Gandhi Nagar",
			Latitude: 12.6623, Longitude: 79.5434,
			Images:      unsplash("1555529902-5261145633bf", "1567696911980-2eed69a46042", "1556228578-8c89e6adf883", "1567696911980-2eed69a46042"),
			Features:    []string{"Shopping Complex", "Central AC", "Ready to Move", "Good Footfall", "Modern Amenities"},
			ContactName: "Balaji Properties", ContactPhone: "+91 86543 21098",
		}},
		{36, models.PropertyInput{
			Type:        models.PropertyTypeRetail,
			Title:       "Office Space for IT/BPO",
			Description: "Spacious office space suitable for IT companies or BPO operations. Multiple cabins and workstations. Conference room and pantry area. High-speed internet connectivity. Ample parking for employees. Located in IT corridor with easy access to transport.",
			Price:       35000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 2500, SizeUnit: models.SizeUnitSqft,
			Address:  "Tech Park, Bypass Road",
			Latitude: 12.6667, Longitude: 79.5367,
			Images:      unsplash("1497366216548-37526070297c", "1497366754035-f200968a6e72", "1497366811353-6870744d04b2", "1486406146926-c627a92ad1ab"),
			Features:    []string{"IT Ready", "Conference Room", "Pantry", "High Speed Internet", "Employee Parking"},
			ContactName: "Sridevi Realty", ContactPhone: "+91 85432 10987",
		}},
		{280, models.PropertyInput{
			Type:        models.PropertyTypeRetail,
			Title:       "Restaurant Space with Kitchen",
			Description: "Fully equipped restaurant space with commercial kitchen setup. Seating capacity for 50 people. Existing exhaust system and gas connections. Strategically located near bus stand and market area. Previous tenant's fixtures can be negotiated.",
			Price:       40000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 1500, SizeUnit: models.SizeUnitSqft,
			Address:  "Station Road, Near Bus Stand",
			Latitude: 12.6612, Longitude: 79.5401,
			Images:      unsplash("1555396273-367ea4eb4db5", "1517248135467-4c7edcad34c4", "1552566626-52f8b828add9", "1590846406792-0adc7f938f1d"),
			Features:    []string{"Commercial Kitchen", "50 Seating", "Exhaust System", "Gas Connection", "Strategic Location"},
			ContactName: "Natarajan & Sons", ContactPhone: "+91 84321 09876",
		}},
		{600, models.PropertyInput{
			Type:        models.PropertyTypeRetail,
			Title:       "Medical Clinic Space",
			Description: "Professional space ideal for medical clinic or diagnostic center. Multiple consultation rooms and waiting area. Separate laboratory space. Good accessibility with ramp for differently-abled. Located in healthcare hub with pharmacy and hospitals nearby.",
			Price:       30000, PriceType: models.PriceTypeRentMonthly,
			SizeValue: 1800, SizeUnit: models.SizeUnitSqft,
			Address:  "Hospital Road, Medical District",
			Latitude: 12.6578, Longitude: 79.5456,
			Images:      unsplash("1519494026892-80bbd2d6fd0d", "1631217868264-e5b90bb7e133", "1587351021759-3e566b6af7cc", "1519494026892-80bbd2d6fd0d"),
			Features:    []string{"Consultation Rooms", "Laboratory Space", "Ramp Access", "Healthcare Hub", "Waiting Area"},
			ContactName: "Selvam Commercial", ContactPhone: "+91 83210 98765",
		}},
		{180, models.PropertyInput{
			Type:        models.PropertyTypeRetail,
			Title:       "Corner Shop with Residence",
			Description: "Unique commercial property with shop on ground floor and 2BHK residence on first floor. Perfect for business owners who want to live above their shop. Corner location with excellent visibility. Suitable for grocery store, pharmacy, or retail business.",
			Price:       8500000, PriceType: models.PriceTypeSale,
			SizeValue: 2200, SizeUnit: models.SizeUnitSqft,
			Address:  "Market Street Corner, Town Center",
			Latitude: 12.6595, Longitude: 79.5429,
			Images:      unsplash("1555529669-e69e7aa0ba9a", "1564013799919-ab600027ffc6", "1528698827591-e19ccd7bc23d", "1441984904996-e0b6ba687e04"),
			Features:    []string{"Shop + Residence", "Corner Location", "High Visibility", "Live-Work Space", "Town Center"},
			ContactName: "Krishna Real Estate", ContactPhone: "+91 82109 87654",
		}},
	}
}
