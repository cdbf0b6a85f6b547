package catalog

import "zoo-web/models"

// productCategories is the fixed category list of the shop select
var productCategories = []string{All, "Toys", "Books", "Accessories", "Apparel", "Conservation"}

var products = []models.Product{
	{ID: 1, Name: "Plush Elephant", Description: "Soft and cuddly elephant plush toy, perfect for animal lovers of all ages.", Price: 2499, Image: "https://images.pexels.com/photos/1741206/pexels-photo-1741206.jpeg", Category: "Toys", InStock: true, Bestseller: true},
	{ID: 2, Name: "Wildlife Field Guide", Description: "Comprehensive guide to the animals in our zoo, with facts, photos, and conservation information.", Price: 1899, Image: "https://images.pexels.com/photos/2465877/pexels-photo-2465877.jpeg", Category: "Books", InStock: true},
	{ID: 3, Name: "Eco-Friendly Water Bottle", Description: "Stainless steel water bottle with our zoo logo. Keeps drinks cold for 24 hours or hot for 12 hours.", Price: 2999, Image: "https://images.pexels.com/photos/1342529/pexels-photo-1342529.jpeg", Category: "Accessories", InStock: true, Bestseller: true},
	{ID: 4, Name: "Animal Print T-Shirt", Description: "Comfortable cotton t-shirt featuring our zoo's logo and animal silhouettes.", Price: 2299, Image: "https://images.pexels.com/photos/5709665/pexels-photo-5709665.jpeg", Category: "Apparel", InStock: true},
	{ID: 5, Name: "Wildlife Photography Book", Description: "Stunning collection of wildlife photographs taken by renowned nature photographers.", Price: 3999, Image: "https://images.pexels.com/photos/3697742/pexels-photo-3697742.jpeg", Category: "Books", InStock: true},
	{ID: 6, Name: "Lion Cub Adoption Kit", Description: "Symbolic adoption kit including a certificate, photo, and plush toy. Supports our lion conservation program.", Price: 4599, Image: "https://images.pexels.com/photos/2265247/pexels-photo-2265247.jpeg", Category: "Conservation", InStock: true, Bestseller: true},
	{ID: 7, Name: "Zoo Souvenir Mug", Description: "Ceramic mug featuring colorful illustrations of our most popular animals.", Price: 1499, Image: "https://images.pexels.com/photos/1793034/pexels-photo-1793034.jpeg", Category: "Accessories", InStock: true},
	{ID: 8, Name: "Rainforest Jigsaw Puzzle", Description: "1000-piece puzzle featuring a vibrant rainforest scene with hidden animals to find.", Price: 1999, Image: "https://images.pexels.com/photos/3988542/pexels-photo-3988542.jpeg", Category: "Toys", InStock: false},
	{ID: 9, Name: "Safari Adventure Hat", Description: "Durable wide-brim hat perfect for sunny days at the zoo. Features embroidered zoo logo.", Price: 2799, Image: "https://images.pexels.com/photos/5816934/pexels-photo-5816934.jpeg", Category: "Apparel", InStock: true},
	{ID: 10, Name: "Penguin Plush Backpack", Description: "Adorable penguin-shaped backpack for kids, perfect for carrying zoo essentials.", Price: 3299, Image: "https://images.pexels.com/photos/1262971/pexels-photo-1262971.jpeg", Category: "Accessories", InStock: true, Bestseller: true},
	{ID: 11, Name: "Animal Kingdom Calendar", Description: "12-month wall calendar featuring stunning wildlife photography from our zoo.", Price: 1599, Image: "https://images.pexels.com/photos/1898555/pexels-photo-1898555.jpeg", Category: "Accessories", InStock: true},
	{ID: 12, Name: "Tiger Conservation Kit", Description: "Support our tiger conservation efforts with this kit including adoption certificate and tiger plush.", Price: 4999, Image: "https://images.pexels.com/photos/162203/panthera-tigris-altaica-tiger-siberian-amurtiger-162203.jpeg", Category: "Conservation", InStock: true, Bestseller: true},
	{ID: 13, Name: "Zoo Animal Sticker Set", Description: "Set of 50 high-quality vinyl stickers featuring various zoo animals.", Price: 899, Image: "https://images.pexels.com/photos/1643457/pexels-photo-1643457.jpeg", Category: "Toys", InStock: true},
	{ID: 14, Name: "Wildlife Documentary DVD", Description: "Exclusive documentary featuring behind-the-scenes footage of our zoo's conservation efforts.", Price: 1999, Image: "https://images.pexels.com/photos/3945317/pexels-photo-3945317.jpeg", Category: "Books", InStock: true},
	{ID: 15, Name: "Zoo Adventure Kids' Hoodie", Description: "Cozy hoodie with playful animal prints, perfect for young zoo enthusiasts.", Price: 3499, Image: "https://images.pexels.com/photos/5693889/pexels-photo-5693889.jpeg", Category: "Apparel", InStock: true, Bestseller: true},
	{ID: 16, Name: "Animal Track Guide", Description: "Educational guide to identifying animal tracks and signs in the wild.", Price: 1299, Image: "https://images.pexels.com/photos/6913125/pexels-photo-6913125.jpeg", Category: "Books", InStock: true},
}
