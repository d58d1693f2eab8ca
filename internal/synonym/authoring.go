package synonym

// Group names in authoring order. Later groups overwrite earlier ones on
// duplicate terms, see Build.
const (
	GroupSchemaLabels         = "Graph Schema - Labels"
	GroupSchemaRelationships  = "Graph Schema - Relationships"
	GroupProductProperties    = "Properties - Product"
	GroupCategoryProperties   = "Properties - Category"
	GroupVariantProperties    = "Properties - Variant"
	GroupOptionProperties     = "Properties - Beverage Option"
	GroupNutritionProperties  = "Properties - Nutrition"
	GroupStoreProperties      = "Properties - Store"
	GroupPromotionProperties  = "Properties - Promotion"
	GroupVariantSizes         = "Variants/Sizes"
	GroupMilkTypes            = "Beverage Options - Milk"
	GroupBeverageOptionSizes  = "Beverage Options - Sizes"
	GroupBeverageOptionExtras = "Beverage Options - Extras"
	GroupCategories           = "Categories"
	GroupProducts             = "Products"
)

// authoredGroups returns the synonym data exactly as authored, duplicates
// included. It builds a fresh value on every call.
func authoredGroups() []Group {
	return []Group{
		{
			Name: GroupSchemaLabels,
			Kind: KindLabel,
			Entries: []Entry{
				{Term: "Product", Synonyms: []string{"sản phẩm", "đồ uống", "thức uống", "món", "món nước", "nước uống", "product", "drink", "beverage", "item"}},
				{Term: "Category", Synonyms: []string{"danh mục", "loại", "nhóm", "phân loại", "dòng sản phẩm", "category", "type", "menu section"}},
				{Term: "Variant", Synonyms: []string{"biến thể", "phiên bản", "kích cỡ", "cỡ ly", "variant", "version", "size option"}},
				{Term: "BeverageOption", Synonyms: []string{"tùy chọn", "tuỳ chọn", "lựa chọn thêm", "tùy chỉnh", "option", "customization", "add-on", "topping"}},
				{Term: "Nutrition", Synonyms: []string{"dinh dưỡng", "thông tin dinh dưỡng", "thành phần dinh dưỡng", "nutrition", "nutrition facts", "nutritional info"}},
				{Term: "Ingredient", Synonyms: []string{"nguyên liệu", "thành phần", "ingredient", "ingredients", "component"}},
				{Term: "Store", Synonyms: []string{"cửa hàng", "chi nhánh", "quán", "tiệm", "store", "shop", "branch", "location"}},
				{Term: "Promotion", Synonyms: []string{"khuyến mãi", "ưu đãi", "giảm giá", "chương trình khuyến mãi", "promotion", "promo", "deal", "discount"}},
			},
		},
		{
			Name: GroupSchemaRelationships,
			Kind: KindRelationship,
			Entries: []Entry{
				{Term: "HAS_PRODUCT", Synonyms: []string{"có sản phẩm", "gồm sản phẩm", "bao gồm", "có món", "has product", "includes", "contains product"}},
				{Term: "HAS_CATEGORIE", Synonyms: []string{"thuộc danh mục", "thuộc loại", "nằm trong nhóm", "là loại", "belongs to category", "in category", "is a"}},
				{Term: "HAS_VARIANT", Synonyms: []string{"có biến thể", "có size", "có các cỡ", "has variant", "comes in", "available in size"}},
				{Term: "HAS_OPTION", Synonyms: []string{"có tùy chọn", "có thể thêm", "có thể đổi", "has option", "can add", "customizable with"}},
				{Term: "HAS_NUTRITION", Synonyms: []string{"có thông tin dinh dưỡng", "giá trị dinh dưỡng của", "has nutrition", "nutrition of"}},
				{Term: "CONTAINS_INGREDIENT", Synonyms: []string{"chứa", "có chứa", "làm từ", "pha từ", "contains", "made with", "made from"}},
				{Term: "SOLD_AT", Synonyms: []string{"bán tại", "có bán ở", "mua ở đâu", "sold at", "available at", "where to buy"}},
				{Term: "HAS_PROMOTION", Synonyms: []string{"đang khuyến mãi", "được giảm giá", "có ưu đãi", "on sale", "has promotion", "discounted"}},
			},
		},
		{
			Name: GroupProductProperties,
			Kind: KindProperty,
			Entries: []Entry{
				{Term: "name", Synonyms: []string{"tên", "tên món", "tên sản phẩm", "gọi là gì", "name", "title", "called"}},
				{Term: "description", Synonyms: []string{"mô tả", "giới thiệu", "thông tin", "là gì", "description", "details", "about"}},
				{Term: "price", Synonyms: []string{"giá", "giá tiền", "bao nhiêu tiền", "giá bao nhiêu", "mấy tiền", "nhiêu tiền", "price", "cost", "how much"}},
				{Term: "image_url", Synonyms: []string{"hình", "hình ảnh", "ảnh", "image", "picture", "photo"}},
				{Term: "is_available", Synonyms: []string{"còn hàng", "còn không", "có bán không", "đang bán", "available", "in stock"}},
				{Term: "is_seasonal", Synonyms: []string{"theo mùa", "món mùa", "phiên bản giới hạn", "seasonal", "limited edition", "limited time"}},
			},
		},
		{
			Name: GroupCategoryProperties,
			Kind: KindProperty,
			Entries: []Entry{
				{Term: "category_name", Synonyms: []string{"tên danh mục", "tên loại", "tên nhóm", "category name"}},
				{Term: "display_order", Synonyms: []string{"thứ tự", "thứ tự hiển thị", "sắp xếp", "display order", "sort order"}},
			},
		},
		{
			Name: GroupVariantProperties,
			Kind: KindProperty,
			Entries: []Entry{
				{Term: "size", Synonyms: []string{"cỡ", "kích cỡ", "kích thước", "size", "ly nhỏ", "ly lớn", "cup size"}},
				{Term: "volume_ml", Synonyms: []string{"dung tích", "thể tích", "bao nhiêu ml", "volume", "ml", "fl oz", "ounces"}},
				{Term: "price_delta", Synonyms: []string{"phụ thu", "tính thêm", "chênh lệch giá", "upcharge", "extra charge", "price difference"}},
			},
		},
		{
			Name: GroupOptionProperties,
			Kind: KindProperty,
			Entries: []Entry{
				{Term: "milk_type", Synonyms: []string{"loại sữa", "sữa gì", "đổi sữa", "milk", "milk type", "milk choice"}},
				{Term: "espresso_shots", Synonyms: []string{"số shot", "shot espresso", "mấy shot", "espresso shots", "shots", "shot count"}},
				{Term: "sweetness_level", Synonyms: []string{"độ ngọt", "mức đường", "ít ngọt", "ngọt", "sweetness", "sugar level"}},
				{Term: "ice_level", Synonyms: []string{"lượng đá", "mức đá", "ít đá", "nhiều đá", "ice level", "amount of ice"}},
				{Term: "syrup", Synonyms: []string{"si rô", "siro", "syrup", "flavor shot", "pump"}},
			},
		},
		{
			Name: GroupNutritionProperties,
			Kind: KindProperty,
			Entries: []Entry{
				{Term: "calories", Synonyms: []string{"calo", "ca lo", "năng lượng", "bao nhiêu calo", "calories", "kcal", "cal"}},
				{Term: "caffeine_mg", Synonyms: []string{"caffeine", "cafein", "cà phê in", "lượng caffeine", "hàm lượng caffeine", "caffeine content", "caffeine mg"}},
				{Term: "sugar_g", Synonyms: []string{"đường", "lượng đường", "bao nhiêu đường", "sugar", "sugars", "grams of sugar"}},
				{Term: "fat_g", Synonyms: []string{"chất béo", "béo", "mỡ", "fat", "total fat"}},
				{Term: "trans_fat_g", Synonyms: []string{"chất béo chuyển hóa", "chất béo trans", "trans fat"}},
				{Term: "saturated_fat_g", Synonyms: []string{"chất béo bão hòa", "saturated fat", "sat fat"}},
				{Term: "protein_g", Synonyms: []string{"đạm", "chất đạm", "protein"}},
				{Term: "sodium_mg", Synonyms: []string{"natri", "muối", "sodium", "salt"}},
				{Term: "cholesterol_mg", Synonyms: []string{"cholesterol", "cô-lét-xtê-rôn", "mỡ máu"}},
				{Term: "carbohydrates_g", Synonyms: []string{"tinh bột", "carb", "carbs", "carbohydrate", "carbohydrates", "total carbohydrates"}},
				{Term: "fiber_g", Synonyms: []string{"chất xơ", "xơ", "fiber", "dietary fiber"}},
				{Term: "vitamin_c_percent", Synonyms: []string{"vitamin c", "vit c", "% vitamin c"}},
				{Term: "calcium_percent", Synonyms: []string{"canxi", "can xi", "calcium"}},
			},
		},
		{
			Name: GroupStoreProperties,
			Kind: KindProperty,
			Entries: []Entry{
				{Term: "address", Synonyms: []string{"địa chỉ", "ở đâu", "chỗ nào", "address", "where"}},
				{Term: "city", Synonyms: []string{"thành phố", "tỉnh", "khu vực", "city", "area"}},
				{Term: "opening_hours", Synonyms: []string{"giờ mở cửa", "mấy giờ mở", "mấy giờ đóng", "giờ hoạt động", "opening hours", "open hours", "business hours"}},
			},
		},
		{
			Name: GroupPromotionProperties,
			Kind: KindProperty,
			Entries: []Entry{
				{Term: "discount_percent", Synonyms: []string{"giảm bao nhiêu", "phần trăm giảm", "mức giảm", "discount percent", "percent off", "% off"}},
				{Term: "start_date", Synonyms: []string{"ngày bắt đầu", "bắt đầu từ", "từ ngày", "start date", "starts"}},
				{Term: "end_date", Synonyms: []string{"ngày kết thúc", "hết hạn", "đến ngày", "end date", "expires", "until"}},
			},
		},
		{
			Name: GroupVariantSizes,
			Kind: KindValue,
			Entries: []Entry{
				{Term: "Short", Synonyms: []string{"nhỏ nhất", "size S", "cỡ S", "short"}},
				{Term: "Tall", Synonyms: []string{"nhỏ", "size nhỏ", "cỡ nhỏ", "tall", "small"}},
				{Term: "Grande", Synonyms: []string{"vừa", "size vừa", "cỡ vừa", "grande", "medium"}},
				{Term: "Venti", Synonyms: []string{"lớn", "size lớn", "cỡ lớn", "venti", "large"}},
			},
		},
		{
			Name: GroupMilkTypes,
			Kind: KindValue,
			Entries: []Entry{
				{Term: "Whole Milk", Synonyms: []string{"sữa tươi", "sữa nguyên kem", "sữa béo", "whole milk", "full cream milk"}},
				{Term: "Nonfat Milk", Synonyms: []string{"sữa tách béo", "sữa không béo", "sữa gầy", "nonfat milk", "skim milk", "skinny"}},
				{Term: "2% Milk", Synonyms: []string{"sữa ít béo", "sữa 2%", "2% milk", "reduced fat milk", "low fat milk"}},
				{Term: "Soy Milk", Synonyms: []string{"sữa đậu nành", "sữa đậu", "soy milk", "soy", "soymilk"}},
				{Term: "Almond Milk", Synonyms: []string{"sữa hạnh nhân", "hạnh nhân", "almond milk", "almond"}},
				{Term: "Oat Milk", Synonyms: []string{"sữa yến mạch", "yến mạch", "oat milk", "oatmilk", "oat"}},
				{Term: "Coconut Milk", Synonyms: []string{"sữa dừa", "nước cốt dừa", "coconut milk", "coconut"}},
				{Term: "Breve", Synonyms: []string{"kem sữa", "half and half", "breve", "half & half"}},
			},
		},
		{
			Name: GroupBeverageOptionSizes,
			Kind: KindValue,
			Entries: []Entry{
				{Term: "Short", Synonyms: []string{"ly short", "8 oz", "8oz", "236 ml", "ly nhỏ nhất", "short size"}},
				{Term: "Tall", Synonyms: []string{"ly tall", "12 oz", "12oz", "354 ml", "ly nhỏ", "tall size"}},
				{Term: "Grande", Synonyms: []string{"ly grande", "16 oz", "16oz", "473 ml", "ly vừa", "grande size"}},
				{Term: "Venti", Synonyms: []string{"ly venti", "20 oz", "24 oz", "591 ml", "ly lớn", "venti size"}},
			},
		},
		{
			Name: GroupBeverageOptionExtras,
			Kind: KindValue,
			Entries: []Entry{
				{Term: "Whipped Cream", Synonyms: []string{"kem tươi", "kem whip", "kem đánh bông", "whipped cream", "whip"}},
				{Term: "No Whipped Cream", Synonyms: []string{"không kem", "bỏ kem", "không kem tươi", "no whip", "no whipped cream"}},
				{Term: "Extra Shot", Synonyms: []string{"thêm shot", "thêm espresso", "đậm hơn", "extra shot", "add shot", "double shot"}},
				{Term: "Decaf", Synonyms: []string{"không caffeine", "không cafein", "decaf", "decaffeinated", "caffeine free"}},
				{Term: "Sugar Free", Synonyms: []string{"không đường", "ăn kiêng", "sugar free", "sugar-free", "no sugar"}},
				{Term: "Light Ice", Synonyms: []string{"ít đá", "đá ít", "light ice", "less ice"}},
				{Term: "No Ice", Synonyms: []string{"không đá", "bỏ đá", "no ice", "without ice"}},
				{Term: "Extra Hot", Synonyms: []string{"nóng hơn", "thật nóng", "extra hot", "hotter"}},
				{Term: "Caramel Drizzle", Synonyms: []string{"sốt caramel", "rưới caramel", "caramel drizzle", "caramel sauce"}},
				{Term: "Vanilla Syrup", Synonyms: []string{"si rô vani", "siro vani", "vani", "vanilla syrup", "vanilla"}},
			},
		},
		{
			Name: GroupCategories,
			Kind: KindValue,
			Entries: []Entry{
				{Term: "Coffee", Synonyms: []string{"cà phê", "cafe", "cà phê pha", "coffee", "brewed coffee drinks"}},
				{Term: "Classic Espresso Drinks", Synonyms: []string{"đồ uống espresso", "espresso cổ điển", "classic espresso", "espresso drinks", "espresso beverages"}},
				{Term: "Signature Espresso Drinks", Synonyms: []string{"espresso đặc biệt", "món đặc trưng", "signature espresso", "signature drinks"}},
				{Term: "Frappuccino Blended Coffee", Synonyms: []string{"đá xay cà phê", "frappuccino cà phê", "frappuccino coffee", "blended coffee"}},
				{Term: "Frappuccino Blended Crème", Synonyms: []string{"đá xay kem", "đá xay không cà phê", "frappuccino creme", "frappuccino crème", "blended creme", "cream based frappuccino"}},
				{Term: "Tazo Tea Drinks", Synonyms: []string{"trà", "đồ uống trà", "tea", "tea drinks", "tazo tea"}},
				{Term: "Smoothies", Synonyms: []string{"sinh tố", "smoothie", "smoothies"}},
				{Term: "Shaken Iced Beverages", Synonyms: []string{"đồ uống lắc", "trà lắc", "shaken iced", "shaken drinks", "iced shaken"}},
				{Term: "Cold Coffee", Synonyms: []string{"cà phê lạnh", "cà phê đá", "cold coffee", "iced coffee drinks"}},
				{Term: "Chocolate Beverages", Synonyms: []string{"sô cô la", "socola", "đồ uống sô cô la", "chocolate drinks", "chocolate"}},
			},
		},
		{
			Name: GroupProducts,
			Kind: KindProduct,
			Entries: []Entry{
				{Term: "Brewed Coffee", Synonyms: []string{"cà phê pha phin", "cà phê đen", "cà phê nóng", "brewed coffee", "drip coffee", "coffee of the day"}},
				{Term: "Caffè Latte", Synonyms: []string{"latte", "cà phê latte", "cà phê sữa kiểu ý", "caffe latte", "caffè latte", "cafe latte"}},
				{Term: "Caffè Mocha", Synonyms: []string{"mocha", "cà phê mocha", "cà phê sô cô la", "caffe mocha", "cafe mocha"}},
				{Term: "Caffè Americano", Synonyms: []string{"americano", "cà phê americano", "cà phê mỹ", "caffe americano", "cafe americano"}},
				{Term: "Cappuccino", Synonyms: []string{"cappuccino", "capuchino", "cà phê bọt sữa", "capu"}},
				{Term: "Espresso", Synonyms: []string{"espresso", "expresso", "cà phê espresso", "cà phê ý", "shot espresso đơn"}},
				{Term: "Espresso Macchiato", Synonyms: []string{"espresso macchiato", "macchiato espresso", "macchiato truyền thống"}},
				{Term: "Espresso Con Panna", Synonyms: []string{"espresso con panna", "con panna", "espresso kem tươi"}},
				{Term: "Caramel Macchiato", Synonyms: []string{"caramel macchiato", "macchiato caramel", "ma ki a tô caramel", "caramel mac"}},
				{Term: "Vanilla Latte", Synonyms: []string{"vanilla latte", "latte vani", "latte vanilla"}},
				{Term: "Skinny Latte", Synonyms: []string{"skinny latte", "latte ít béo", "latte không béo", "nonfat latte"}},
				{Term: "White Chocolate Mocha", Synonyms: []string{"white chocolate mocha", "mocha sô cô la trắng", "white mocha", "mocha trắng"}},
				{Term: "Hot Chocolate", Synonyms: []string{"sô cô la nóng", "socola nóng", "hot chocolate", "hot cocoa"}},
				{Term: "Caramel Apple Spice", Synonyms: []string{"caramel apple spice", "nước táo caramel", "táo quế caramel"}},
				{Term: "Chai Tea Latte", Synonyms: []string{"chai latte", "trà chai", "trà sữa chai", "chai tea latte", "chai"}},
				{Term: "Green Tea Latte", Synonyms: []string{"matcha latte", "trà xanh latte", "trà xanh sữa", "green tea latte", "matcha"}},
				{Term: "Caramel Frappuccino", Synonyms: []string{"caramel frappuccino", "đá xay caramel", "frap caramel", "caramel frap"}},
				{Term: "Mocha Frappuccino", Synonyms: []string{"mocha frappuccino", "đá xay mocha", "mocha frap"}},
				{Term: "Java Chip Frappuccino", Synonyms: []string{"java chip frappuccino", "java chip", "đá xay java chip", "đá xay sô cô la chip"}},
				{Term: "Coffee Frappuccino", Synonyms: []string{"coffee frappuccino", "đá xay cà phê nguyên bản", "coffee frap"}},
				{Term: "Strawberries & Crème Frappuccino", Synonyms: []string{"strawberries and creme frappuccino", "strawberry frappuccino", "đá xay dâu", "dâu kem đá xay"}},
				{Term: "Vanilla Bean Frappuccino", Synonyms: []string{"vanilla bean frappuccino", "vanilla frappuccino", "đá xay vani"}},
				{Term: "Banana Chocolate Smoothie", Synonyms: []string{"banana chocolate smoothie", "sinh tố chuối sô cô la", "sinh tố chuối"}},
				{Term: "Orange Mango Smoothie", Synonyms: []string{"orange mango smoothie", "sinh tố cam xoài", "sinh tố xoài"}},
				{Term: "Strawberry Banana Smoothie", Synonyms: []string{"strawberry banana smoothie", "sinh tố dâu chuối", "sinh tố dâu"}},
				{Term: "Iced Brewed Coffee", Synonyms: []string{"iced coffee", "cà phê đá pha", "cà phê đen đá", "iced brewed coffee"}},
				{Term: "Cold Brew", Synonyms: []string{"cold brew", "cà phê ủ lạnh", "cold brew coffee", "cà phê cold brew"}},
				{Term: "Shaken Iced Tazo Tea", Synonyms: []string{"shaken iced tea", "trà đá lắc", "iced tazo tea", "trà lắc đá"}},
				{Term: "Shaken Iced Peach Green Tea", Synonyms: []string{"peach green tea", "trà xanh đào", "trà đào lắc", "iced peach tea"}},
			},
		},
	}
}
