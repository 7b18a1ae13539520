package migrate

import "kevina/internal/domain"

// DefaultProducts is the fixed seed catalog. Names are the dedup key, so
// they must stay byte-identical across releases (typos included).
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{Name: "The Ordinary Alpha Arbutin", Price: 5800, Image: "https://www.blushme.lk/cdn/shop/files/3_5802d669-e3fa-4c30-816a-16c5e53d16bb.png?v=1735488701"},
		{Name: "Odinary Glycolic Acid 240ML", Price: 6200, Image: "https://budgethut.lk/wp-content/uploads/2025/07/Untitleddesign_69.png"},
		{Name: "Odinary Nicenamide 30ML", Price: 3000, Image: "https://libertystore.lk/wp-content/uploads/2025/03/New-Project-2025-03-18T140720.784.png"},
		{Name: "Odinary Peeling Solution 30ML", Price: 4200, Image: "https://erange.lk/wp-content/uploads/2022/04/The-Ordinary-AHA-30-BHA-2-Peeling-Solution-600x781.jpeg"},
		{Name: "Ordinary Salicylic Acid 2% Anhydrous Solution 30ML", Price: 4500, Image: "https://simplyglow.lk/wp-content/uploads/2025/04/1743444615_13457346-1894912002988002.jpg"},
		{Name: "Ordinary Marine Hyaluronics Serum 30ml", Price: 4700, Image: "https://www.essentials.lk/cdn/shop/files/TheOrdinaryMarineHyaluronicsSerum30ml.jpg?crop=center&height=1000&v=1731904212&width=1000.jpg"},
		{Name: "Ordinary Soothing and Barrier Support Serum 30ml (A multi-active solution)", Price: 4900, Image: "https://www.thecareak.com/wp-content/uploads/2025/05/The-Ordinary-Soothing-Barrier-Support-Serum.jpg"},
		{Name: "Ordinary Ascorbyl Glucoside Solution 12%(Vitamin C) 30ML", Price: 7800, Image: "https://www.beautygalleryng.com/wp-content/uploads/2022/03/rdn-ascorbyl-glucoside-solution-12pct-30ml-3.png"},
		{Name: "Ordinary Multi Antioxidant Radiance Serum 30ML", Price: 6450, Image: "https://m.media-amazon.com/images/I/51Haw2Z4HfL._AC_UF1000,1000_QL80_.jpg"},
		{Name: "Odinary Saccharomyces Ferment 30% Milky Toner 100ML", Price: 7500, Image: "https://histyle.ie/wp-content/uploads/2024/05/Hi-Style-2-2.jpg"},
		{Name: "Ordinary Squalane Cleanser 50ml", Price: 5950, Image: "https://shopxonline.lk/cdn/shop/files/the-ordinary-squalane-face-cleanser-50ml-canada-512580.webp?v=1725949181.jpg"},
		{Name: "Ordinary Natural Moisturizing Factors + HA 30ml", Price: 8750, Image: "https://www.essentials.lk/cdn/shop/products/TheOrdinaryNaturalMoisturizingFactors_HA.jpg?v=1614435828.jpg"},
		{Name: "TRESemmé Keratin Smooth Shampoo 700Ml (Uk)", Price: 4500, Image: "https://static-01.daraz.lk/p/9cc32aa9ad5c9c2cc1ab2a2d87973edf.jpg"},
		{Name: "Tresemme Keratin Smooth Conditioner 700ml", Price: 4600, Image: "https://supersavings.lk/wp-content/uploads/2022/11/tresemme-keratin-shampoo-700ml.jpg"},
		{Name: "TRESemme Botanique Nourish & Replenish Shampoo 700ml", Price: 3750, Image: "https://supersavings.lk/wp-content/uploads/2023/09/tresemme-botanique-shampoo.jpg"},
		{Name: "Tresemme Botanique Nourish + Replenish Conditioner, Coconut Oil and Aloe Vera 700Ml", Price: 3750, Image: "https://shopxonline.lk/cdn/shop/files/Untitleddesign-2024-11-11T161311.241.png?v=1731321803"},
		{Name: "OGX Renewing + Argan Oil of Morocco Shampoo 385ml", Price: 5000, Image: "https://static.beautytocare.com/media/catalog/product/o/g/ogx-renewing-argan-oil-of-morocco-shampoo-385ml_2.jpg"},
		{Name: "OGX Renewing + Argan Oil of Morocco Conditioner 385ml", Price: 5100, Image: "https://static.beautytocare.com/media/catalog/product//o/g/ogx-renewing-argan-oil-of-morocco-conditioner-385ml_2.jpg"},
		{Name: "OGX Biotin and Collagen Shampoo 385ml", Price: 5000, Image: "https://images.albertsons-media.com/is/image/ABS/960133960-C1N1?$ng-ecom-pdp-mobile$&defaultImage=Not_Available.jpg"},
	}
}
