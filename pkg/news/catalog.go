package news

type CategoryInfo struct {
	ID     Category
	NameEn string
	NameGu string
}

type Resource struct {
	Title       string
	URL         string
	Description string
}

var categoryCatalog = [...]CategoryInfo{
	{CategoryAll, "All News", "બધા સમાચાર"},
	{CategoryGovernment, "Government Schemes", "સરકારી યોજનાઓ"},
	{CategoryMarket, "Market Updates", "બજાર અપડેટ"},
	{CategoryTechnology, "Technology", "ટેકનોલોજી"},
	{CategoryGeneral, "General", "સામાન્ય"},
}

var resourceCatalog = [...]Resource{
	{"i-ખેડૂત પોર્ટલ - ગુજરાત સરકાર", "https://ikhedut.gujarat.gov.in/", "Gujarat government portal for farmers"},
	{"ખેડૂત પોર્ટલ - ભારત સરકાર", "https://farmer.gov.in/", "Indian government portal for farmers"},
	{"એગમાર્કનેટ - કૃષિ બજાર માહિતી", "https://www.agmarknet.gov.in/", "Agricultural market information"},
}

// Categories returns a copy of the category catalog.
func Categories() []CategoryInfo {
	c := categoryCatalog
	return c[:]
}

// Resources returns a copy of the resource catalog.
func Resources() []Resource {
	r := resourceCatalog
	return r[:]
}
