// Package noise: fixed lookup tables.
//
// grad2D holds the 8 corner gradient directions for Perlin/Simplex noise;
// cell2D holds 256 jittered point offsets (magnitude <= 0.45) used by the
// cellular generators. Both are compile-time constants with no mutable
// state; indices come from the low bits of hash2D.
package noise

// grad2D is indexed by hash2D(...) & 7.
var grad2D = [8][2]float32{
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	{0, -1}, {-1, 0}, {0, 1}, {1, 0},
}

// cell2D is indexed by hash2D(...) & 255.
var cell2D = [256][2]float32{
	{-0.4313539279, 0.1281943404}, {-0.1733316799, 0.415278375}, {-0.2821957395, -0.3505218461}, {-0.2806473808, 0.3517627718},
	{0.3125508975, -0.3237467165}, {0.3383018443, -0.2967353402}, {-0.4393982022, -0.09710417025}, {-0.4460443703, -0.05953502905},
	{-0.302223039, 0.3334085102}, {-0.212681052, -0.3965687458}, {-0.2991156529, 0.3361990872}, {0.2293323691, 0.3871778202},
	{0.4475439151, -0.04695150755}, {0.1777518, 0.41340573}, {0.1688522499, -0.4171197882}, {-0.0976597166, 0.4392750616},
	{0.08450188373, 0.4419948321}, {-0.4098760448, -0.1857461384}, {0.3476585782, -0.2857157906}, {-0.3350670039, -0.30038326},
	{0.2298190031, -0.3868891648}, {-0.01069924099, 0.449872789}, {-0.4460141246, -0.05976119672}, {0.3650293864, 0.2631606867},
	{-0.349479423, 0.2834856838}, {-0.4122720642, 0.1803655873}, {-0.267327811, 0.3619887311}, {0.322124041, -0.3142230135},
	{0.2880445931, -0.3457315612}, {0.3892170926, -0.2258540565}, {0.4492085018, -0.02667811596}, {-0.4497724772, 0.01430799601},
	{0.1278175387, -0.4314657307}, {-0.03572100503, 0.4485799926}, {-0.4297407068, -0.1335025276}, {-0.3217817723, 0.3145735065},
	{-0.3057158873, 0.3302087162}, {-0.414503978, 0.1751754899}, {-0.3738139881, 0.2505256519}, {0.2236891408, -0.3904653228},
	{0.002967775577, -0.4499902136}, {0.1747128327, -0.4146991995}, {-0.4423772489, -0.08247647938}, {-0.2763960987, -0.355112935},
	{-0.4019385906, -0.2023496216}, {0.3871414161, -0.2293938184}, {-0.430008727, 0.1326367019}, {-0.03037574274, -0.4489736231},
	{-0.3486181573, 0.2845441624}, {0.04553517144, -0.4476902368}, {-0.0375802926, 0.4484280562}, {0.3266408905, 0.3095250049},
	{0.06540017593, -0.4452222108}, {0.03409025829, 0.448706869}, {-0.4449193635, 0.06742966669}, {-0.4255936157, -0.1461850686},
	{0.449917292, 0.008627302568}, {0.05242606404, 0.4469356864}, {-0.4495305179, -0.02055026661}, {-0.1204775703, 0.4335725488},
	{-0.341986385, -0.2924813028}, {0.3865320182, 0.2304191809}, {0.04506097811, -0.447738214}, {-0.06283465979, 0.4455915232},
	{0.3932600341, -0.2187385324}, {0.4472261803, -0.04988730975}, {0.3753571011, -0.2482076684}, {-0.273662295, 0.357223947},
	{0.1700461538, 0.4166344988}, {0.4102692229, 0.1848760794}, {0.323227187, -0.3130881435}, {-0.2882310238, -0.3455761521},
	{0.2050972664, 0.4005435199}, {0.4414085979, -0.08751256895}, {-0.1684700334, 0.4172743077}, {-0.003978032396, 0.4499824166},
	{-0.2055133639, 0.4003301853}, {-0.006095674897, -0.4499587123}, {-0.1196228124, -0.4338091548}, {0.3901528491, -0.2242337048},
	{0.01723531752, 0.4496698165}, {-0.3015070339, 0.3340561458}, {-0.01514262423, -0.4497451511}, {-0.4142574071, -0.1757577897},
	{-0.1916377265, -0.4071547394}, {0.3749248747, 0.2488600778}, {-0.2237774255, 0.3904147331}, {-0.4166343106, -0.1700466149},
	{0.3619171625, 0.267424695}, {0.1891126846, -0.4083336779}, {-0.3127425077, 0.323561623}, {-0.3281807787, 0.307891826},
	{-0.2294806661, 0.3870899429}, {-0.3445266136, 0.2894847362}, {-0.4167095422, -0.1698621719}, {-0.257890321, -0.3687717212},
	{-0.3612037825, 0.2683874578}, {0.2267996491, 0.3886668486}, {0.207157062, 0.3994821043}, {0.08355176718, -0.4421754202},
	{-0.4312233307, 0.1286329626}, {0.3257055497, 0.3105090899}, {0.177701095, -0.4134275279}, {-0.445182522, 0.06566979625},
	{0.3955143435, 0.2146355146}, {-0.4264613988, 0.1436338239}, {-0.3793799665, -0.2420141339}, {0.04617599081, -0.4476245948},
	{-0.371405428, -0.2540826796}, {0.2563570295, -0.3698392535}, {0.03476646309, 0.4486549822}, {-0.3065454405, 0.3294387544},
	{-0.2256979823, 0.3893076172}, {0.4116448463, -0.1817925206}, {-0.2907745828, -0.3434387019}, {0.2842278468, -0.348876097},
	{0.3114589359, -0.3247973695}, {0.4464155859, -0.0566844308}, {-0.3037334033, -0.3320331606}, {0.4079607166, 0.1899159123},
	{-0.3486948919, -0.2844501228}, {0.3264821436, 0.3096924441}, {0.3211142406, 0.3152548881}, {0.01183382662, 0.4498443737},
	{0.4333844092, 0.1211526057}, {0.3118668416, 0.324405723}, {-0.272753471, 0.3579183483}, {-0.422228622, -0.1556373694},
	{-0.1009700099, -0.4385260051}, {-0.2741171231, -0.3568750521}, {-0.1465125133, 0.4254810025}, {0.2302279044, -0.3866459777},
	{-0.3699435608, 0.2562064828}, {0.105700352, -0.4374099171}, {-0.2646713633, 0.3639355292}, {0.3521828122, 0.2801200935},
	{-0.1864187807, -0.4095705534}, {0.1994492955, -0.4033856449}, {0.3937065066, 0.2179339044}, {-0.3226158377, 0.3137180602},
	{0.3796235338, 0.2416318948}, {0.1482921929, 0.4248640083}, {-0.407400394, 0.1911149365}, {0.4212853031, 0.1581729856},
	{-0.2621297173, 0.3657704353}, {-0.2536986953, -0.3716678248}, {-0.2100236383, 0.3979825013}, {0.3624152444, 0.2667493029},
	{-0.3645038479, -0.2638881295}, {0.2318486784, 0.3856762766}, {-0.3260457004, 0.3101519002}, {-0.2130045332, -0.3963950918},
	{0.3814998766, -0.2386584257}, {-0.342977305, 0.2913186713}, {-0.4355865605, 0.1129794154}, {-0.2104679605, 0.3977477059},
	{0.3348364681, -0.3006402163}, {0.3430468811, 0.2912367377}, {-0.2291836801, -0.3872658529}, {0.2547707298, -0.3709337882},
	{0.4236174945, -0.151816397}, {-0.15387742, 0.4228731957}, {-0.4407449312, 0.09079595574}, {-0.06805276192, -0.444824484},
	{0.4453517192, -0.06451237284}, {0.2562464609, -0.3699158705}, {0.3278198355, -0.3082761026}, {-0.4122774207, -0.1803533432},
	{0.3354090914, -0.3000012356}, {0.446632869, -0.05494615882}, {-0.1608953296, 0.4202531296}, {-0.09463954939, 0.4399356268},
	{-0.02637688324, -0.4492262904}, {0.447102804, -0.05098119915}, {-0.4365670908, 0.1091291678}, {-0.3959858651, 0.2137643437},
	{-0.4240048207, -0.1507312575}, {-0.3882794568, 0.2274622243}, {-0.4283652566, -0.1378521198}, {0.3303888091, 0.305521251},
	{0.3321434919, -0.3036127481}, {-0.413021046, -0.1786438231}, {0.08403060337, -0.4420846725}, {-0.3822882919, 0.2373934748},
	{-0.3712395594, -0.2543249683}, {0.4472363971, -0.04979563372}, {-0.4466591209, 0.05473234629}, {0.0486272539, -0.4473649407},
	{-0.4203101295, -0.1607463688}, {0.2205360833, 0.39225481}, {-0.3624900666, 0.2666476169}, {-0.4036086833, -0.1989975647},
	{0.2152727807, 0.3951678503}, {-0.4359392962, -0.1116106179}, {0.4178354266, 0.1670735057}, {0.2007630161, 0.4027334247},
	{-0.07278067175, -0.4440754146}, {0.3644748615, -0.2639281632}, {-0.4317451775, 0.126870413}, {-0.297436456, 0.3376855855},
	{-0.2998672222, 0.3355289094}, {-0.2673674124, 0.3619594822}, {0.2808423357, 0.3516071423}, {0.3498946567, 0.2829730186},
	{-0.2229685561, 0.390877248}, {0.3305823267, 0.3053118493}, {-0.2436681211, -0.3783197679}, {-0.03402776529, 0.4487116125},
	{-0.319358823, 0.3170330301}, {0.4454633477, -0.06373700535}, {0.4483504221, 0.03849544189}, {-0.4427358436, -0.08052932871},
	{0.05452298565, 0.4466847255}, {-0.2812560807, 0.3512762688}, {0.1266696921, 0.4318041097}, {-0.3735981243, 0.2508474468},
	{0.2959708351, -0.3389708908}, {-0.3714377181, 0.254035473}, {-0.404467102, -0.1972469604}, {0.1636165687, -0.419201167},
	{0.3289185495, -0.3071035458}, {-0.2494824991, -0.3745109914}, {0.03283133272, 0.4488007393}, {-0.166306057, -0.4181414777},
	{-0.106833179, 0.4371346153}, {0.06440260376, -0.4453676062}, {-0.4483230967, 0.03881238203}, {-0.421377757, -0.1579265206},
	{0.05097920662, -0.4471030312}, {0.2050584153, -0.4005634111}, {0.4178098529, -0.167137449}, {-0.3565189504, -0.2745801121},
	{0.4478398129, 0.04403977727}, {-0.3399999602, -0.2947881053}, {0.3767121994, 0.2461461331}, {-0.3138934434, 0.3224451987},
	{-0.1462001792, -0.4255884251}, {0.3970290489, -0.2118205239}, {0.4459149305, -0.06049689889}, {-0.4104889426, -0.1843877112},
	{0.1475103971, -0.4251360756}, {0.09258030352, 0.4403735771}, {-0.1589664637, -0.4209865359}, {0.2482445008, 0.3753327428},
	{0.4383624232, -0.1016778537}, {0.06242802956, 0.4456486745}, {0.2846591015, -0.3485243118}, {-0.344202744, -0.2898697484},
	{0.1198188883, -0.4337550392}, {-0.243590703, 0.3783696201}, {0.2958191174, -0.3391033025}, {-0.1164007991, 0.4346847754},
	{0.1274037151, -0.4315881062}, {0.368047306, 0.2589231171}, {0.2451436949, 0.3773652989}, {-0.4314509715, 0.12786735},
}
