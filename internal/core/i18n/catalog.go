package i18n

// Message keys used by the tracking page.
const (
	KeyPageTitle          = "page.title"
	KeyHome               = "nav.home"
	KeyPricing            = "nav.pricing"
	KeyContactSales       = "nav.contact_sales"
	KeyTrackShipment      = "nav.track_shipment"
	KeyTrackingNumberHint = "nav.tracking_number_hint"
	KeySignIn             = "nav.sign_in"
	KeyTrackingNumber     = "header.tracking_number"
	KeyLastUpdate         = "header.last_update"
	KeyMerchant           = "header.merchant"
	KeyPromisedDate       = "header.promised_date"
	KeyShipmentDetails    = "details.title"
	KeyBranch             = "details.branch"
	KeyDate               = "details.date"
	KeyTime               = "details.time"
	KeyDetails            = "details.details"
	KeyDeliveryAddress    = "address.title"
	KeyAddressUnavailable = "address.unavailable"
	KeyHelpQuestion       = "help.question"
	KeyReportProblem      = "help.report"
	KeyNoShipment         = "empty.no_shipment"
)

// catalog maps key -> language -> text. Status codes are keys too.
var catalog = map[string]map[Language]string{
	KeyPageTitle:          {Arabic: "تتبع الشحنة", English: "Track shipment"},
	KeyHome:               {Arabic: "الرئيسية", English: "Home"},
	KeyPricing:            {Arabic: "الأسعار", English: "Pricing"},
	KeyContactSales:       {Arabic: "كلم المبيعات", English: "Contact sales"},
	KeyTrackShipment:      {Arabic: "تتبع شحنتك", English: "Track your shipment"},
	KeyTrackingNumberHint: {Arabic: "رقم التتبع", English: "Tracking number"},
	KeySignIn:             {Arabic: "تسجيل الدخول", English: "Sign in"},
	KeyTrackingNumber:     {Arabic: "رقم الشحنة", English: "Shipment No."},
	KeyLastUpdate:         {Arabic: "اخر تحديث", English: "Last update"},
	KeyMerchant:           {Arabic: "اسم التاجر", English: "Merchant name"},
	KeyPromisedDate:       {Arabic: "موعد التسليم خلال", English: "Delivery due by"},
	KeyShipmentDetails:    {Arabic: "تفاصيل الشحنة", English: "Shipment details"},
	KeyBranch:             {Arabic: "الفرع", English: "Branch"},
	KeyDate:               {Arabic: "التاريخ", English: "Date"},
	KeyTime:               {Arabic: "الوقت", English: "Time"},
	KeyDetails:            {Arabic: "تفاصيل", English: "Details"},
	KeyDeliveryAddress:    {Arabic: "عنوان التسليم", English: "Delivery address"},
	KeyAddressUnavailable: {Arabic: "العنوان غير متاح", English: "Address not available"},
	KeyHelpQuestion:       {Arabic: "هل يوجد مشكلة في شحنتك؟", English: "Is there a problem with your shipment?"},
	KeyReportProblem:      {Arabic: "إبلاغ عن مشكلة", English: "Report a problem"},
	KeyNoShipment:         {Arabic: "أدخل رقم التتبع لعرض حالة الشحنة", English: "Enter a tracking number to see the shipment status"},

	"TICKET_CREATED":              {Arabic: "تم إنشاء الشحنة", English: "Shipment created"},
	"PACKAGE_RECEIVED":            {Arabic: "تم استلام الشحنة من التاجر", English: "Package received"},
	"OUT_FOR_DELIVERY":            {Arabic: "الشحنة خرجت للتسليم", English: "Out for delivery"},
	"DELIVERED":                   {Arabic: "تم التسليم", English: "Delivered"},
	"IN_TRANSIT":                  {Arabic: "الشحنة في الطريق", English: "In transit"},
	"NOT_YET_SHIPPED":             {Arabic: "لم يتم الشحن بعد", English: "Not yet shipped"},
	"WAITING_FOR_CUSTOMER_ACTION": {Arabic: "في انتظار إجراء من العميل", English: "Waiting for customer action"},
	"CANCELLED":                   {Arabic: "تم إلغاء الشحنة", English: "Cancelled"},
	"DELIVERED_TO_SENDER":         {Arabic: "تم إرجاع الشحنة للتاجر", English: "Returned to sender"},
}

// T returns the text for key in lang.
// A missing language falls back to English; a missing key returns the key itself.
func T(lang Language, key string) string {
	texts, ok := catalog[key]
	if !ok {
		return key
	}
	if text, ok := texts[lang]; ok {
		return text
	}
	if text, ok := texts[English]; ok {
		return text
	}
	return key
}

// Has reports whether key has a translation.
func Has(key string) bool {
	_, ok := catalog[key]
	return ok
}
