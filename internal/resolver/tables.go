package resolver

// commandPrefixes are research command verbs stripped before extraction so
// "Research XyzCo" resolves the same as "XyzCo".
var commandPrefixes = []string{
	"research", "find", "lookup", "search",
	"analyse", "analyze", "investigate",
	"tell me about", "get info on", "get information on",
}

// knownCompanies is the reference list for fuzzy matching and contextual
// resolution.
var knownCompanies = []string{
	"Apple", "Microsoft", "Google", "Amazon", "Tesla", "Meta", "Facebook",
	"Netflix", "Adobe", "Salesforce", "Oracle", "IBM", "Intel", "AMD", "NVIDIA",
	"Qualcomm", "Cisco", "Dell", "HP", "Lenovo", "Samsung", "Sony", "LG",
	"Infosys", "TCS", "Wipro", "HCL Technologies", "Cognizant", "Accenture",
	"Twitter", "X", "Snap", "Snapchat", "Pinterest", "LinkedIn", "Uber", "Lyft",
	"Airbnb", "Spotify", "Zoom", "Slack", "Dropbox", "Box", "PayPal", "Stripe",
	"Square", "Block", "Shopify", "eBay", "Walmart", "Target", "Costco",
	"McDonald's", "Starbucks", "Nike", "Adidas", "Coca-Cola", "PepsiCo",
	"Procter & Gamble", "Johnson & Johnson", "Pfizer", "Moderna", "Merck",
	"Boeing", "Airbus", "Ford", "GM", "General Motors", "Toyota", "Honda",
	"Volkswagen", "BMW", "Mercedes-Benz", "Audi", "Rivian", "Lucid Motors",
	"SpaceX", "Blue Origin", "Palantir", "Snowflake", "Databricks", "MongoDB",
	"Atlassian", "ServiceNow", "Workday", "SAP", "VMware", "Red Hat",
	"GitHub", "GitLab", "Docker", "Kubernetes", "OpenAI", "Anthropic",
	"Reliance", "Tata", "Mahindra", "Bharti Airtel", "HDFC", "ICICI",
	"Flipkart", "Zomato", "Swiggy", "Ola", "Paytm", "PhonePe", "Razorpay",
}

// companyAliases maps descriptive references to canonical names. Entries are
// ordered; the first alias contained in the message wins. Alias matches
// always go through confirmation.
var companyAliases = []struct {
	Alias   string
	Company string
}{
	{"the search company", "Google"},
	{"the search engine", "Google"},
	{"the map company", "Google"},
	{"the email company", "Google"},
	{"gmail company", "Google"},
	{"youtube company", "Google"},
	{"the iphone company", "Apple"},
	{"the mac company", "Apple"},
	{"iphone maker", "Apple"},
	{"the windows company", "Microsoft"},
	{"xbox company", "Microsoft"},
	{"office company", "Microsoft"},
	{"the cloud company", "Amazon"},
	{"aws company", "Amazon"},
	{"the shopping company", "Amazon"},
	{"the electric car company", "Tesla"},
	{"the ev company", "Tesla"},
	{"elon musk's car company", "Tesla"},
	{"the social media company", "Meta"},
	{"facebook company", "Meta"},
	{"instagram company", "Meta"},
	{"whatsapp company", "Meta"},
	{"the indian it company", "Infosys"},
	{"the indian it firm", "Infosys"},
	{"bangalore it company", "Infosys"},
	{"tata it company", "TCS"},
	{"the gpu company", "NVIDIA"},
	{"the graphics card company", "NVIDIA"},
	{"the chip company", "Intel"},
	{"the processor company", "Intel"},
	{"the streaming company", "Netflix"},
	{"the movie streaming", "Netflix"},
	{"the ride company", "Uber"},
	{"the taxi app", "Uber"},
	{"the music app", "Spotify"},
	{"the music streaming", "Spotify"},
}

// nonCompanyWords must never be treated as company names.
var nonCompanyWords = map[string]bool{
	"yes": true, "no": true, "ok": true, "okay": true, "sure": true,
	"proceed": true, "continue": true, "go": true, "go ahead": true,
	"fine": true, "alright": true, "right": true, "correct": true,
	"yep": true, "yup": true, "nope": true, "nah": true,
	"hi": true, "hello": true, "hey": true, "hii": true, "hiii": true,
	"greetings": true, "good morning": true, "good afternoon": true,
	"good evening": true, "bye": true, "goodbye": true, "thanks": true,
	"thank you": true,
	"help": true, "stop": true, "exit": true, "quit": true, "cancel": true,
	"reset": true, "clear": true, "undo": true,
	"show": true, "display": true, "view": true, "see": true, "print": true,
	"plan": true,
	"it": true, "that": true, "this": true, "them": true, "they": true,
	"those": true, "these": true,
	"the company": true, "that company": true, "this company": true,
	"the one": true,
	"what": true, "who": true, "where": true, "when": true, "why": true,
	"how": true, "which": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true,
	"do": true, "does": true, "did": true, "done": true, "doing": true,
	"have": true, "has": true, "had": true, "having": true,
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "if": true, "then": true,
	"1": true, "2": true, "3": true, "4": true, "5": true,
	"one": true, "two": true, "three": true, "first": true, "second": true,
}

// contextualPhrases signal a reference to an earlier company mention.
var contextualPhrases = []string{
	"that company", "this company", "the company", "the one",
	"that one", "this one", "same company", "same one",
	"the previous one", "the last one", "mentioned company",
}
