package luck_core

// 本文件只存放文案与查表数据，不含任何生成逻辑。
// 新增语言或类目只需要扩表，不需要改动生成器。

// dreamEntry 梦境关键词与号码的关联
// 切片顺序即模糊匹配的优先级，不能改成 map（遍历顺序是匹配契约的一部分）
type dreamEntry struct {
	key     string
	numbers []int
}

// 梦境号码表（越南语"Sổ Mơ"传统），同一概念的越/英/韩词条映射到同一组号码
var dreamDB = []dreamEntry{
	{"snake", []int{32, 42, 72}}, {"rắn", []int{32, 42, 72}}, {"뱀", []int{32, 42, 72}},
	{"dog", []int{11, 51, 91}}, {"chó", []int{11, 51, 91}}, {"개", []int{11, 51, 91}},
	{"cat", []int{14, 54, 94}}, {"mèo", []int{14, 54, 94}}, {"고양이", []int{14, 54, 94}},
	{"mouse", []int{15, 55, 95}}, {"chuột", []int{15, 55, 95}}, {"쥐", []int{15, 55, 95}},
	{"tiger", []int{6, 46, 86}}, {"hổ", []int{6, 46, 86}}, {"호랑이", []int{6, 46, 86}},
	{"bird", []int{22, 62}}, {"chim", []int{22, 62}}, {"새", []int{22, 62}},
	{"fish", []int{1, 41, 81}}, {"cá", []int{1, 41, 81}}, {"물고기", []int{1, 41, 81}},
	{"fire", []int{7, 27, 67, 87}}, {"lửa", []int{7, 27, 67, 87}}, {"불", []int{7, 27, 67, 87}},
	{"water", []int{10, 26, 56}}, {"nước", []int{10, 26, 56}}, {"물", []int{10, 26, 56}},
	{"money", []int{52, 25, 33}}, {"tiền", []int{52, 25, 33}}, {"돈", []int{52, 25, 33}},
	{"gold", []int{32, 79}}, {"vàng", []int{32, 79}}, {"금", []int{32, 79}},
	{"falling", []int{8, 66}}, {"rơi", []int{8, 66}}, {"추락", []int{8, 66}},
	{"flying", []int{21, 12}}, {"bay", []int{21, 12}}, {"비행", []int{21, 12}},
}

// 梦境配图
var dreamImages = map[string]string{
	"tiger":   "https://cdn-icons-png.flaticon.com/512/1998/1998610.png",
	"animal":  "https://cdn-icons-png.flaticon.com/512/1998/1998610.png",
	"money":   "https://cdn-icons-png.flaticon.com/512/2489/2489756.png",
	"gold":    "https://cdn-icons-png.flaticon.com/512/2489/2489756.png",
	"water":   "https://cdn-icons-png.flaticon.com/512/414/414974.png",
	"rain":    "https://cdn-icons-png.flaticon.com/512/414/414974.png",
	"fire":    "https://cdn-icons-png.flaticon.com/512/785/785116.png",
	"hot":     "https://cdn-icons-png.flaticon.com/512/785/785116.png",
	"default": "https://cdn-icons-png.flaticon.com/512/1251/1251559.png",
}

// 配图类目的模糊匹配词表
var (
	moneyImageKeys  = []string{"money", "gold", "rich", "tiền", "vàng", "돈", "금"}
	waterImageKeys  = []string{"water", "rain", "sea", "nước", "mưa", "biển", "물"}
	fireImageKeys   = []string{"fire", "burn", "sun", "lửa", "cháy", "불"}
	animalImageKeys = []string{"tiger", "dog", "cat", "snake", "hổ", "chó", "mèo", "rắn", "호랑이", "개", "고양이", "뱀"}
)

// 梦境叙事类目的匹配词表
var (
	snakeStoryKeys = []string{"snake", "rắn", "뱀"}
	fireStoryKeys  = []string{"fire", "lửa", "불", "cháy"}
)

// 判定梦境类型为 animal 的词表
var animalTypeKeys = []string{
	"snake", "tiger", "dog", "cat", "mouse", "buffalo", "pig",
	"rắn", "hổ", "chó", "mèo", "뱀", "호랑이", "개",
}

// fortuneTemplateSet 每日运势的叙事片段
type fortuneTemplateSet struct {
	openings []string
	wealth   []string
	love     []string
	links    []string
}

var fortuneTemplates = map[Lang]fortuneTemplateSet{
	LangVN: {
		openings: []string{
			"Ánh bình minh hôm nay chiếu rọi qua màn sương, đánh thức nguồn năng lượng tiềm ẩn trong cung mệnh của bạn.",
			"Những vì sao chiếu mệnh đang di chuyển vào vị trí thuận lợi nhất, tạo nên một luồng vượng khí bao bọc lấy bạn.",
			"Dòng chảy năng lượng của vũ trụ hôm nay êm đềm như một con sông lớn, mang theo phù sa bồi đắp cho vận trình.",
			"Gió từ phương Đông mang theo hơi thở của sự đổi mới, xua tan những đám mây u ám để nhường chỗ cho ánh hào quang.",
		},
		wealth: []string{
			"Về tài lộc, hạt giống bạn gieo trồng bấy lâu nay đã bắt đầu nảy mầm, mang lại lợi nhuận bất ngờ.",
			"Công việc kinh doanh cực kỳ hanh thông, tiền bạc chảy về như nước. Đây là thời điểm vàng để mở rộng quy mô.",
			"Thần Tài đang gõ cửa với những cơ hội kiếm tiền từ các nguồn phụ, nhưng hãy giữ cái đầu lạnh.",
			"Vận may tài chính đang ở mức đỉnh điểm, một khoản thưởng nóng hoặc quà tặng giá trị đang chờ đón bạn.",
		},
		love: []string{
			"Trong tình cảm, sự thấu hiểu sâu sắc sẽ gắn kết hai tâm hồn. Mọi mâu thuẫn sẽ tan biến trước sự chân thành.",
			"Sự duyên dáng của bạn hôm nay sẽ thu phục được lòng người, mở ra những mối quan hệ quý nhân đắc lực.",
			"Sức khỏe tinh thần rất tốt, tỏa ra năng lượng chữa lành. Hãy dành thời gian buổi tối để hâm nóng tình cảm gia đình.",
			"Nếu còn độc thân, hôm nay là ngày tuyệt vời để mở lòng. Một cuộc gặp gỡ tình cờ có thể là nhân duyên tiền định.",
		},
		links: []string{
			"Toàn bộ nguồn năng lượng cát tường này đang hội tụ trọn vẹn vào Con Số May Mắn hiển thị bên dưới.",
			"Vũ trụ đã gửi gắm thông điệp thịnh vượng thông qua những con số được tính toán riêng cho bạn.",
			"Sự kết tinh của vận may ngày hôm nay nằm chính xác ở bộ số gợi ý bên dưới, hãy nắm bắt ngay.",
			"Những con số may mắn dưới đây là chìa khóa được số mệnh sắp đặt để bạn mở cánh cửa tài lộc.",
		},
	},
	LangEN: {
		openings: []string{
			"The morning sun illuminates your zodiac house, signaling a powerful cycle of renewal and vitality.",
			"Celestial bodies align perfectly today, creating a protective aura of positive energy around your spirit.",
			"The universe's energy flows like a calm river today, bringing fertile opportunities to your life's path.",
			"A fresh breeze from the East blows away uncertainty, clearing the path for your brilliant success.",
		},
		wealth: []string{
			"Financially, seeds you planted long ago are finally sprouting. Expect unexpected returns from past efforts.",
			"Business prospects are flowing smoothly like water. It is a golden time to expand or sign important contracts.",
			"Fortune knocks on your door with side-income opportunities. Stay grounded to distinguish real gold from glitter.",
			"Your financial luck is peaking. A bonus or valuable gift is making its way to you right now.",
		},
		love: []string{
			"In relationships, unspoken understanding will bond souls together. Small conflicts vanish before sincerity.",
			"Your charisma is magnetic today, attracting helpful people and noble benefactors to your cause.",
			"Your mental well-being radiates healing energy. Spend the evening warming up family connections.",
			"If single, open your heart today. A chance encounter could lead to a destined connection.",
		},
		links: []string{
			"This entire auspicious energy converges perfectly into the Lucky Numbers displayed below.",
			"The universe sends a message of prosperity through these specific numbers calculated just for you.",
			"Today's crystallized luck lies precisely in the number set below. Seize the opportunity.",
			"The numbers below are not random; they are keys arranged by destiny to open your door to wealth.",
		},
	},
	LangKR: {
		openings: []string{
			"아침 햇살이 당신의 별자리를 비추며, 새로운 활력과 재생의 주기가 시작됨을 알립니다.",
			"오늘 천체의 기운이 완벽하게 정렬되어, 당신의 영혼을 감싸는 긍정적인 보호막을 형성합니다.",
			"우주의 기운이 마치 고요한 강물처럼 흘러, 당신의 인생 여정에 비옥한 기회를 가져다줍니다.",
			"동쪽에서 불어오는 상서로운 바람이 불확실성을 걷어내고, 찬란한 성공의 길을 열어줍니다.",
		},
		wealth: []string{
			"재물운을 보면, 오래전 뿌린 씨앗이 드디어 싹을 틔웁니다. 과거의 노력에서 뜻밖의 보상을 기대하세요.",
			"사업운이 물 흐르듯 순조롭습니다. 규모를 확장하거나 중요한 계약을 체결하기에 황금 같은 시기입니다.",
			"부수입의 기회가 문을 두드립니다. 하지만 진짜 기회를 잡기 위해 냉철한 판단력을 유지하세요.",
			"금전운이 절정에 달했습니다. 보너스나 귀한 선물이 지금 당신에게 다가오고 있습니다.",
		},
		love: []string{
			"애정 전선에서는 말 없는 이해가 영혼을 결속시킵니다. 진심 앞에서 사소한 갈등은 눈 녹듯 사라집니다.",
			"오늘 당신의 매력은 자석과 같아서, 귀인과 조력자들을 당신의 곁으로 끌어당깁니다.",
			"당신의 정신적 건강이 치유의 에너지를 발산합니다. 저녁에는 가족과의 따뜻한 시간을 보내세요.",
			"싱글이라면 오늘 마음을 활짝 여세요. 우연한 만남이 운명적인 인연으로 이어질 수 있습니다.",
		},
		links: []string{
			"이 모든 상서로운 기운이 아래에 표시된 행운의 숫자로 완벽하게 수렴됩니다.",
			"우주는 당신만을 위해 계산된 이 숫자들을 통해 번영의 메시지를 전하고 있습니다.",
			"오늘의 결정체 같은 행운이 아래 숫자 세트에 담겨 있습니다. 기회를 놓치지 마세요.",
			"아래의 숫자들은 우연이 아닙니다. 운명이 당신에게 건네는 부의 열쇠입니다.",
		},
	},
}

// dreamTemplateSet 解梦叙事片段，每个类目固定三段
type dreamTemplateSet struct {
	generic []string
	snake   []string
	fire    []string
}

var dreamTemplates = map[Lang]dreamTemplateSet{
	LangVN: {
		generic: []string{
			"Giấc mơ này là tấm gương phản chiếu tâm thức sâu thẳm của bạn, báo hiệu một sự chuyển dịch năng lượng sắp tới.",
			"Những hình ảnh trong mơ cho thấy trực giác của bạn đang rất nhạy bén, hãy lắng nghe tiếng nói bên trong.",
			"Vũ trụ đang gửi tín hiệu để bạn chuẩn bị đón nhận những cơ hội mới hoặc thay đổi quan trọng.",
		},
		snake: []string{
			"Rắn trong giấc mơ là biểu tượng của sự tái sinh và quyền lực ngầm. Một sự lột xác ngoạn mục đang chờ đợi bạn.",
			"Về mặt tài lộc, rắn thường mang đến điềm báo về những khoản tiền bất ngờ hoặc sự thăng tiến địa vị.",
			"Tuy nhiên, hãy cẩn trọng trong các mối quan hệ xã giao, có thể có sự đố kỵ đang ẩn giấu đâu đó.",
		},
		fire: []string{
			"Ngọn lửa trong mơ đại diện cho khát vọng cháy bỏng và năng lượng dương mạnh mẽ đang trỗi dậy trong bạn.",
			"Đây là điềm báo cho sự thăng hoa trong sự nghiệp hoặc danh tiếng, công sức của bạn sắp được tỏa sáng.",
			"Nhưng lửa cũng cảnh báo về sự nóng vội. Hãy giữ cái đầu lạnh để kiểm soát sức mạnh này một cách khôn ngoan.",
		},
	},
	LangEN: {
		generic: []string{
			"This dream is a mirror reflecting your deep consciousness, signaling an upcoming shift in energy.",
			"The images in your dream suggest your intuition is sharp right now; listen to your inner voice.",
			"The universe is sending signals for you to prepare for new opportunities or significant changes.",
		},
		snake: []string{
			"A snake in a dream is a symbol of rebirth and hidden power. A spectacular transformation awaits you.",
			"Financially, snakes often omen unexpected wealth or a rise in status.",
			"However, be cautious in social relationships, as hidden envy might be lurking nearby.",
		},
		fire: []string{
			"Fire in a dream represents burning desire and strong yang energy rising within you.",
			"This omens an ascent in career or fame; your efforts are about to shine brightly.",
			"But fire also warns of impatience. Keep a cool head to control this power wisely.",
		},
	},
	LangKR: {
		generic: []string{
			"이 꿈은 당신의 깊은 의식을 비추는 거울이며, 다가오는 에너지의 변화를 알립니다.",
			"꿈속의 이미지는 당신의 직관이 매우 예리함을 보여줍니다. 내면의 목소리에 귀를 기울이세요.",
			"우주가 새로운 기회나 중요한 변화를 받아들일 준비를 하라는 신호를 보내고 있습니다.",
		},
		snake: []string{
			"꿈속의 뱀은 재생과 숨겨진 힘의 상징입니다. 놀라운 변화가 당신을 기다리고 있습니다.",
			"재물운 측면에서 뱀은 종종 뜻밖의 횡재나 지위 상승을 예고합니다.",
			"하지만 대인 관계에서는 조심하세요. 주변에 숨겨진 질투가 있을 수 있습니다.",
		},
		fire: []string{
			"꿈속의 불은 불타오르는 열망과 당신 안에서 솟아오르는 강한 양의 에너지를 상징합니다.",
			"이는 경력이나 명성의 상승을 예고하며, 당신의 노력이 곧 빛을 발할 것입니다.",
			"하지만 불은 성급함을 경고하기도 합니다. 이 힘을 현명하게 통제하기 위해 냉정함을 유지하세요.",
		},
	},
}

// 解梦的方位与颜色候选
var dreamDirections = map[Lang][]string{
	LangVN: {"Bắc", "Nam", "Đông", "Tây", "Đông Bắc"},
	LangEN: {"North", "South", "East", "West", "North-East"},
	LangKR: {"북쪽", "남쪽", "동쪽", "서쪽", "북동쪽"},
}

var dreamColors = map[Lang][]string{
	LangVN: {"Đỏ", "Vàng", "Xanh", "Trắng", "Tím"},
	LangEN: {"Red", "Gold", "Blue", "White", "Purple"},
	LangKR: {"빨강", "황금", "파랑", "흰색", "보라"},
}

// fortuneColor 每日运势颜色（展示名按语言区分，色值固定）
type fortuneColor struct {
	code  string
	names map[Lang]string
}

var fortunePalette = []fortuneColor{
	{code: "#ef4444", names: map[Lang]string{LangVN: "Đỏ", LangEN: "Red", LangKR: "빨강"}},
	{code: "#FFCD00", names: map[Lang]string{LangVN: "Vàng", LangEN: "Gold", LangKR: "황금"}},
	{code: "#3b82f6", names: map[Lang]string{LangVN: "Xanh Dương", LangEN: "Blue", LangKR: "파랑"}},
	{code: "#22c55e", names: map[Lang]string{LangVN: "Xanh Lá", LangEN: "Green", LangKR: "초록"}},
	{code: "#a855f7", names: map[Lang]string{LangVN: "Tím", LangEN: "Purple", LangKR: "보라"}},
	{code: "#f97316", names: map[Lang]string{LangVN: "Cam", LangEN: "Orange", LangKR: "주황"}},
}

// 深度分析的叙事前缀
var deepPrefixes = map[Lang]string{
	LangVN: "[Phân Tích Sâu] ",
	LangEN: "[Deep Analysis] ",
	LangKR: "[정밀 분석] ",
}

// 天干与地支（越南语表记）
var (
	heavenlyStems   = []string{"Giáp", "Ất", "Bính", "Đinh", "Mậu", "Kỷ", "Canh", "Tân", "Nhâm", "Quý"}
	earthlyBranches = []string{"Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ", "Ngọ", "Mùi", "Thân", "Dậu", "Tuất", "Hợi"}
)

// reportTemplateSet 八字报告文案，格式化占位符的顺序是契约的一部分
type reportTemplateSet struct {
	overview    string
	analysis    string
	advice      string
	forecast    string
	dominantFmt string // %s=五行名 %d=占比
	weakFmt     string // %s=五行名
	body1Fmt    string // %s=年柱天干 %s=年柱地支 %s=心事插入语
	body2Fmt    string // %s=旺相五行 %s=所生五行
	tips        [3]string
	months      [3]string
	elements    map[string]string // kim/moc/thuy/hoa/tho → 本地化名称
}

var reportTemplates = map[Lang]reportTemplateSet{
	LangVN: {
		overview:    "Tổng Quan Bản Mệnh",
		analysis:    "Phân Tích Chuyên Sâu",
		advice:      "Lời Khuyên & Hành Động",
		forecast:    "Biểu Đồ Vận Trình",
		dominantFmt: "Bát tự của bạn cho thấy sự vượng khí của hành **%s** (%d%%) đang chi phối cục diện. Điều này biểu thị bạn là người có ý chí mạnh mẽ và khả năng thích ứng cao.",
		weakFmt:     "Tuy nhiên, hành **%s** đang bị suy yếu, cần chú ý cân bằng để tránh những biến động không đáng có trong tâm lý.",
		body1Fmt:    "Thiên can %s kết hợp với địa chi %s năm sinh tạo nên một nền tảng vững chắc.%s Quẻ dịch cho thấy thời điểm này là lúc \"ẩn mình chờ thời\" hoặc \"bung sức bứt phá\" tùy thuộc vào sự lựa chọn của bạn.",
		body2Fmt:    "Nếu bạn đang do dự, hãy nhớ rằng **%s** sinh **%s**, nghĩa là cơ hội sẽ đến từ những mối quan hệ cũ hoặc kỹ năng bạn đã bỏ quên. Đừng vội vàng tin vào những lời hứa hẹn hoa mỹ.",
		tips: [3]string{
			"Củng cố nội lực: Tập trung vào việc trau dồi kỹ năng cốt lõi trong tháng này.",
			"Hóa giải xung khắc: Sử dụng các vật phẩm màu sắc hợp mệnh để cân bằng năng lượng.",
			"Thời điểm vàng: Các quyết định quan trọng nên được thực hiện vào giờ hoàng đạo.",
		},
		months: [3]string{
			"Biến động nhẹ, cần giữ tiền bạc cẩn thận.",
			"Quý nhân xuất hiện, công việc hanh thông.",
			"Sức khỏe dồi dào, tinh thần minh mẫn.",
		},
		elements: map[string]string{"kim": "Kim", "moc": "Mộc", "thuy": "Thủy", "hoa": "Hỏa", "tho": "Thổ"},
	},
	LangEN: {
		overview:    "Fate Overview",
		analysis:    "Deep Analysis",
		advice:      "Advice & Action",
		forecast:    "Forecast",
		dominantFmt: "Your Bazi chart shows that **%s** energy (%d%%) is dominant. This indicates a strong will and high adaptability.",
		weakFmt:     "However, **%s** energy is weak. You need to balance this to avoid unnecessary psychological fluctuations.",
		body1Fmt:    "The combination of Heavenly Stem %s and Earthly Branch %s creates a solid foundation.%s The oracle suggests this is a time to either \"lie low\" or \"break through\" depending on your choice.",
		body2Fmt:    "If you are hesitant, remember that **%s** generates **%s**. Opportunities will come from old relationships or forgotten skills. Do not trust flowery promises too quickly.",
		tips: [3]string{
			"Strengthen Inner Power: Focus on honing core skills this month.",
			"Resolve Conflict: Use lucky items to balance your energy field.",
			"Golden Timing: Make important decisions during your auspicious hours.",
		},
		months: [3]string{
			"Slight fluctuations, handle money with care.",
			"Noble people appear, work goes smoothly.",
			"Abundant health, clear mind.",
		},
		elements: map[string]string{"kim": "Metal", "moc": "Wood", "thuy": "Water", "hoa": "Fire", "tho": "Earth"},
	},
	LangKR: {
		overview:    "사주 총평",
		analysis:    "정밀 분석",
		advice:      "조언 및 행동",
		forecast:    "운세 흐름",
		dominantFmt: "사주팔자 분석 결과 **%s** 기운(%d%%)이 지배적입니다. 이는 당신이 강한 의지와 높은 적응력을 가졌음을 의미합니다.",
		weakFmt:     "그러나 **%s** 기운이 약하므로, 심리적인 기복을 피하기 위해 균형을 맞춰야 합니다.",
		body1Fmt:    "천간 %s와 지지 %s의 조화가 튼튼한 기반을 형성합니다.%s 괘상은 지금이 당신의 선택에 따라 \"때를 기다릴\" 시기이거나 \"돌파할\" 시기임을 암시합니다.",
		body2Fmt:    "망설이고 있다면, **%s**이 **%s**을 생(生)한다는 것을 기억하세요. 기회는 오래된 인연이나 잊혀진 기술에서 올 것입니다. 화려한 약속을 너무 빨리 믿지 마세요.",
		tips: [3]string{
			"내공 강화: 이번 달은 핵심 역량을 연마하는 데 집중하세요.",
			"상극 해소: 행운의 색상 아이템을 사용하여 에너지를 균형 있게 만드세요.",
			"황금 시간: 중요한 결정은 길한 시간에 내리는 것이 좋습니다.",
		},
		months: [3]string{
			"약간의 변동이 있으니 금전 관리에 유의하세요.",
			"귀인이 나타나 일이 순조롭게 풀립니다.",
			"건강이 넘치고 정신이 맑아집니다.",
		},
		elements: map[string]string{"kim": "금(金)", "moc": "목(木)", "thuy": "수(水)", "hoa": "화(火)", "tho": "토(土)"},
	},
}

// 分析主题的本地化标签，未知主题回退到 money
var topicLabels = map[string]map[Lang]string{
	"money":    {LangVN: "Tài Lộc & Công Danh", LangKR: "재물 & 명예", LangEN: "Wealth & Career"},
	"love":     {LangVN: "Tình Duyên & Gia Đạo", LangKR: "사랑 & 가정", LangEN: "Love & Family"},
	"career":   {LangVN: "Sự Nghiệp & Thăng Tiến", LangKR: "직업 & 승진", LangEN: "Career & Promotion"},
	"health":   {LangVN: "Sức Khỏe & Bình An", LangKR: "건강 & 평안", LangEN: "Health & Safety"},
	"exam":     {LangVN: "Thi Cử & Học Vấn", LangKR: "시험 & 학업", LangEN: "Exam & Study"},
	"relation": {LangVN: "Các Mối Quan Hệ", LangKR: "대인 관계", LangEN: "Relationships"},
}

// 性别标签
var genderLabels = map[string]map[Lang]string{
	"male":   {LangVN: "Nam", LangKR: "남성", LangEN: "Male"},
	"female": {LangVN: "Nữ", LangKR: "여성", LangEN: "Female"},
}

// 五行相生环：金生水、水生木、木生火、火生土、土生金
var generatesCycle = map[string]string{
	"kim":  "thuy",
	"thuy": "moc",
	"moc":  "hoa",
	"hoa":  "tho",
	"tho":  "kim",
}
