package research

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// datasetLookup finds a record for common companies: exact key, then
// substring, then fuzzy match (cutoff 80).
func (c *Client) datasetLookup(companyName string) *CompanyRecord {
	normalized := strings.ToLower(strings.TrimSpace(companyName))

	if record, ok := c.dataset[normalized]; ok {
		return record
	}

	for key, record := range c.dataset {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return record
		}
		if strings.Contains(strings.ToLower(record.Name), normalized) {
			return record
		}
	}

	bestScore := 0
	var best *CompanyRecord
	for key, record := range c.dataset {
		score := fuzzy.WRatio(normalized, key)
		if score >= 80 && score > bestScore {
			bestScore = score
			best = record
		}
	}
	return best
}

// builtinDataset returns the internal fixed dataset of well-known companies.
func builtinDataset() map[string]*CompanyRecord {
	return map[string]*CompanyRecord{
		"apple": {
			Name:         "Apple Inc.",
			Description:  "Apple Inc. is an American multinational technology company headquartered in Cupertino, California. Apple is the world's largest technology company by revenue and one of the world's most valuable companies. It designs, manufactures, and sells consumer electronics, software, and services.",
			Industry:     "Technology, Consumer Electronics",
			Founded:      "1976",
			Headquarters: "Cupertino, California, USA",
			Products:     []string{"iPhone", "iPad", "Mac", "Apple Watch", "AirPods", "Apple TV"},
			Services:     []string{"App Store", "Apple Music", "iCloud", "Apple TV+", "Apple Pay"},
			Competitors:  []string{"Samsung", "Google", "Microsoft", "Huawei", "Sony"},
			KeyPeople:    []string{"Tim Cook (CEO)", "Craig Federighi (SVP Software Engineering)"},
			Revenue:      "$383 billion (2023)",
			Employees:    "164,000+",
		},
		"microsoft": {
			Name:         "Microsoft Corporation",
			Description:  "Microsoft Corporation is an American multinational technology corporation headquartered in Redmond, Washington. Microsoft is the world's largest software maker by revenue and one of the most valuable companies globally. It develops and sells computer software, consumer electronics, and related services.",
			Industry:     "Technology, Software, Cloud Computing",
			Founded:      "1975",
			Headquarters: "Redmond, Washington, USA",
			Products:     []string{"Windows", "Microsoft 365", "Xbox", "Surface", "Azure"},
			Services:     []string{"Azure Cloud", "LinkedIn", "GitHub", "Microsoft 365", "Dynamics 365"},
			Competitors:  []string{"Apple", "Google", "Amazon", "Oracle", "Salesforce"},
			KeyPeople:    []string{"Satya Nadella (CEO)", "Brad Smith (President)"},
			Revenue:      "$211 billion (2023)",
			Employees:    "221,000+",
		},
		"google": {
			Name:         "Google LLC (Alphabet Inc.)",
			Description:  "Google LLC is an American multinational technology company focusing on search engine technology, online advertising, cloud computing, computer software, quantum computing, e-commerce, artificial intelligence, and consumer electronics. It is a subsidiary of Alphabet Inc.",
			Industry:     "Technology, Internet Services, Advertising",
			Founded:      "1998",
			Headquarters: "Mountain View, California, USA",
			Products:     []string{"Google Search", "Chrome", "Android", "Pixel", "Nest"},
			Services:     []string{"Google Cloud", "YouTube", "Google Maps", "Gmail", "Google Workspace"},
			Competitors:  []string{"Microsoft", "Apple", "Amazon", "Meta", "OpenAI"},
			KeyPeople:    []string{"Sundar Pichai (CEO)"},
			Revenue:      "$307 billion (2023)",
			Employees:    "182,000+",
		},
		"amazon": {
			Name:         "Amazon.com, Inc.",
			Description:  "Amazon.com, Inc. is an American multinational technology company focusing on e-commerce, cloud computing, online advertising, digital streaming, and artificial intelligence. It is one of the most valuable companies in the world and one of the largest employers.",
			Industry:     "E-commerce, Cloud Computing, Technology",
			Founded:      "1994",
			Headquarters: "Seattle, Washington, USA",
			Products:     []string{"Kindle", "Echo", "Fire TV", "Ring"},
			Services:     []string{"Amazon Web Services (AWS)", "Prime Video", "Amazon Prime", "Alexa"},
			Competitors:  []string{"Walmart", "Microsoft", "Google", "Alibaba", "eBay"},
			KeyPeople:    []string{"Andy Jassy (CEO)", "Jeff Bezos (Founder)"},
			Revenue:      "$574 billion (2023)",
			Employees:    "1,500,000+",
		},
		"tesla": {
			Name:         "Tesla, Inc.",
			Description:  "Tesla, Inc. is an American multinational automotive and clean energy company headquartered in Austin, Texas. Tesla designs and manufactures electric vehicles, stationary battery energy storage devices, solar panels, and related products and services.",
			Industry:     "Automotive, Clean Energy, Technology",
			Founded:      "2003",
			Headquarters: "Austin, Texas, USA",
			Products:     []string{"Model S", "Model 3", "Model X", "Model Y", "Cybertruck", "Powerwall", "Solar Roof"},
			Services:     []string{"Supercharger Network", "Full Self-Driving", "Tesla Insurance"},
			Competitors:  []string{"Ford", "GM", "Volkswagen", "Rivian", "BYD", "Lucid Motors"},
			KeyPeople:    []string{"Elon Musk (CEO)"},
			Revenue:      "$96.7 billion (2023)",
			Employees:    "140,000+",
		},
		"meta": {
			Name:         "Meta Platforms, Inc.",
			Description:  "Meta Platforms, Inc., formerly known as Facebook, Inc., is an American multinational technology conglomerate. The company owns and operates Facebook, Instagram, WhatsApp, and Threads, and is developing virtual and augmented reality products.",
			Industry:     "Social Media, Technology, Virtual Reality",
			Founded:      "2004",
			Headquarters: "Menlo Park, California, USA",
			Products:     []string{"Facebook", "Instagram", "WhatsApp", "Threads", "Meta Quest", "Ray-Ban Meta"},
			Services:     []string{"Meta Ads", "Workplace", "Horizon Worlds"},
			Competitors:  []string{"Google", "TikTok (ByteDance)", "Snap", "Twitter/X", "Apple"},
			KeyPeople:    []string{"Mark Zuckerberg (CEO)"},
			Revenue:      "$134.9 billion (2023)",
			Employees:    "67,000+",
		},
		"infosys": {
			Name:         "Infosys Limited",
			Description:  "Infosys Limited is an Indian multinational information technology company that provides business consulting, information technology and outsourcing services. Headquartered in Bangalore, Karnataka, India, Infosys is the second-largest Indian IT company after Tata Consultancy Services.",
			Industry:     "Information Technology, Business Consulting, Outsourcing",
			Founded:      "1981",
			Headquarters: "Bangalore, Karnataka, India",
			Products:     []string{"Infosys Nia", "Infosys Cobalt", "EdgeVerve Systems", "Panaya", "Skava"},
			Services:     []string{"IT Consulting", "Business Process Outsourcing", "Cloud Services", "Digital Transformation", "Application Development"},
			Competitors:  []string{"TCS", "Wipro", "HCL Technologies", "Cognizant", "Accenture", "IBM"},
			KeyPeople:    []string{"Salil Parekh (CEO)", "Nandan Nilekani (Co-founder)"},
			Revenue:      "$18.6 billion (2024)",
			Employees:    "317,000+",
		},
		"tcs": {
			Name:         "Tata Consultancy Services",
			Description:  "Tata Consultancy Services (TCS) is an Indian multinational information technology services and consulting company headquartered in Mumbai. It is a subsidiary of Tata Group and operates in 150 locations across 46 countries. TCS is the largest Indian IT company by market capitalization.",
			Industry:     "Information Technology, Consulting, Business Solutions",
			Founded:      "1968",
			Headquarters: "Mumbai, Maharashtra, India",
			Products:     []string{"TCS BaNCS", "TCS iON", "ignio", "TCS MasterCraft"},
			Services:     []string{"IT Services", "Consulting", "Business Solutions", "Digital Transformation", "Cloud Infrastructure"},
			Competitors:  []string{"Infosys", "Wipro", "HCL Technologies", "Accenture", "IBM", "Cognizant"},
			KeyPeople:    []string{"K. Krithivasan (CEO)"},
			Revenue:      "$29 billion (2024)",
			Employees:    "614,000+",
		},
		"wipro": {
			Name:         "Wipro Limited",
			Description:  "Wipro Limited is an Indian multinational corporation that provides information technology, consulting and business process services. Headquartered in Bangalore, India, Wipro is one of the leading IT services companies globally.",
			Industry:     "Information Technology, Consulting, Business Process Services",
			Founded:      "1945",
			Headquarters: "Bangalore, Karnataka, India",
			Products:     []string{"Wipro Holmes", "VIVID", "Wipro Digital Operations Platform"},
			Services:     []string{"Application Services", "Cloud Services", "Consulting", "Digital Operations", "Engineering Services"},
			Competitors:  []string{"TCS", "Infosys", "HCL Technologies", "Cognizant", "Accenture"},
			KeyPeople:    []string{"Thierry Delaporte (CEO)", "Azim Premji (Founder)"},
			Revenue:      "$11.3 billion (2024)",
			Employees:    "234,000+",
		},
		"intel": {
			Name:         "Intel Corporation",
			Description:  "Intel Corporation is an American multinational corporation and technology company headquartered in Santa Clara, California. It is one of the world's largest semiconductor chip manufacturers by revenue.",
			Industry:     "Semiconductors, Technology, Computing",
			Founded:      "1968",
			Headquarters: "Santa Clara, California, USA",
			Products:     []string{"Intel Core Processors", "Intel Xeon", "Intel Arc GPUs", "Intel Optane"},
			Services:     []string{"Intel Foundry Services", "Intel Developer Cloud"},
			Competitors:  []string{"AMD", "NVIDIA", "Qualcomm", "Samsung", "TSMC", "ARM"},
			KeyPeople:    []string{"Pat Gelsinger (CEO)"},
			Revenue:      "$54.2 billion (2023)",
			Employees:    "124,800+",
		},
		"nvidia": {
			Name:         "NVIDIA Corporation",
			Description:  "NVIDIA Corporation is an American multinational technology company designing and supplying graphics processing units (GPUs), APIs for data science and high-performance computing, as well as system on a chip units for mobile computing and automotive markets.",
			Industry:     "Semiconductors, AI, Graphics Processing",
			Founded:      "1993",
			Headquarters: "Santa Clara, California, USA",
			Products:     []string{"GeForce GPUs", "RTX Series", "Quadro", "Tesla GPUs", "NVIDIA DGX", "Jetson"},
			Services:     []string{"NVIDIA AI Enterprise", "GeForce NOW", "NVIDIA Omniverse"},
			Competitors:  []string{"AMD", "Intel", "Qualcomm", "Google TPU", "Microsoft"},
			KeyPeople:    []string{"Jensen Huang (CEO & Co-founder)"},
			Revenue:      "$60.9 billion (2024)",
			Employees:    "29,600+",
		},
		"netflix": {
			Name:         "Netflix, Inc.",
			Description:  "Netflix, Inc. is an American subscription video on-demand over-the-top streaming service. Netflix has played a major role in the rise of digital distribution of content.",
			Industry:     "Entertainment, Streaming, Technology",
			Founded:      "1997",
			Headquarters: "Los Gatos, California, USA",
			Products:     []string{"Netflix Streaming", "Netflix DVD"},
			Services:     []string{"Video Streaming", "Original Content Production"},
			Competitors:  []string{"Disney+", "Amazon Prime Video", "HBO Max", "Apple TV+", "Hulu"},
			KeyPeople:    []string{"Ted Sarandos (Co-CEO)", "Greg Peters (Co-CEO)"},
			Revenue:      "$33.7 billion (2023)",
			Employees:    "13,000+",
		},
	}
}
