package species

// catalog is the static freshwater reference table. The storefront ships it
// compiled in rather than seeding a database table: the data changes with
// releases, not at runtime.
var catalog = []Species{
	{
		ID:             "neon-tetra",
		CommonName:     "Neon Tetra",
		ArabicName:     "تترا نيون",
		ScientificName: "Paracheirodon innesi",
		Family:         "Characidae",
		Origin:         "South America, Amazon basin",
		MinSizeCM:      2.5,
		MaxSizeCM:      4,
		LifespanYears:  8,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 26, PHMin: 6.0, PHMax: 7.0, Hardness: "soft"},
		Diet:           []string{"Flakes", "Micro pellets", "Frozen bloodworms", "Brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingDifficult,
			Method:     MethodEggLayer,
			Triggers:   []string{"Near-total darkness", "Very soft acidic water", "Live foods"},
			Notes:      "Eggs are light sensitive; cover the tank completely and remove the parents after spawning.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Cardinal Tetra", "Harlequin Rasbora", "Guppy", "Corydoras", "Dwarf Gourami"},
			AvoidWith: []string{"Cichlids", "Angelfish (adults)", "Large Barbs"},
		},
		Category: "tetra",
	},
	{
		ID:             "betta-splendens",
		CommonName:     "Betta Fish",
		ArabicName:     "سمكة البيتا",
		ScientificName: "Betta splendens",
		Family:         "Osphronemidae",
		Origin:         "Southeast Asia, Thailand",
		MinSizeCM:      5,
		MaxSizeCM:      7,
		LifespanYears:  3,
		Temperament:    TemperamentAggressive,
		CareLevel:      CareBeginner,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.5, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Betta pellets", "Bloodworms", "Brine shrimp", "Daphnia"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodBubbleNest,
			Triggers:   []string{"Raise temperature to 27-28C", "Shallow still water", "Condition pair separately"},
			Notes:      "The male guards the bubble nest; remove the female right after spawning.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Corydoras", "Kuhli Loach", "Snails"},
			AvoidWith: []string{"Other Bettas", "Guppies (long fins)", "Tiger Barbs"},
		},
		Category: "betta",
	},
	{
		ID:             "guppy",
		CommonName:     "Guppy",
		ArabicName:     "جوبي",
		ScientificName: "Poecilia reticulata",
		Family:         "Poeciliidae",
		Origin:         "South America, Venezuela and Trinidad",
		MinSizeCM:      3,
		MaxSizeCM:      6,
		LifespanYears:  2,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 6.8, PHMax: 7.8, Hardness: "medium"},
		Diet:           []string{"Flakes", "Micro pellets", "Brine shrimp", "Vegetable matter"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodLiveBearer,
			Triggers:   []string{"Stable warm water", "Frequent small feedings"},
			Notes:      "Fry are born free-swimming; dense plants keep them out of adult mouths.",
		},
		Schooling:    false,
		MinimumGroup: 3,
		Compatibility: Compatibility{
			GoodWith:  []string{"Platy", "Molly", "Neon Tetra", "Corydoras"},
			AvoidWith: []string{"Tiger Barb", "Betta males", "Large Cichlids"},
		},
		Category: "livebearer",
	},
	{
		ID:             "angelfish",
		CommonName:     "Angelfish",
		ArabicName:     "سمكة الملاك",
		ScientificName: "Pterophyllum scalare",
		Family:         "Cichlidae",
		Origin:         "South America, Amazon basin",
		MinSizeCM:      12,
		MaxSizeCM:      15,
		LifespanYears:  10,
		Temperament:    TemperamentSemiAggressive,
		CareLevel:      CareIntermediate,
		MinTankLiters:  120,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 29, PHMin: 6.5, PHMax: 7.4, Hardness: "soft"},
		Diet:           []string{"Cichlid flakes", "Pellets", "Bloodworms", "Brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Pair forms naturally from a group", "Vertical spawning surface", "Slightly soft acidic water"},
			Notes:      "Pairs clean a vertical slate or leaf and guard the eggs together.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Corydoras", "Larger Tetras", "Gouramis"},
			AvoidWith: []string{"Neon Tetra", "Fin nippers", "Small shrimp"},
		},
		Category: "cichlid",
	},
	{
		ID:             "corydoras-paleatus",
		CommonName:     "Peppered Corydoras",
		ArabicName:     "كوريدوراس مرقط",
		ScientificName: "Corydoras paleatus",
		Family:         "Callichthyidae",
		Origin:         "South America, lower Parana basin",
		MinSizeCM:      5,
		MaxSizeCM:      7,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 26, PHMin: 6.0, PHMax: 7.5, Hardness: "medium"},
		Diet:           []string{"Sinking pellets", "Wafers", "Bloodworms"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Cool water change", "Drop in barometric pressure", "High-protein conditioning"},
			Notes:      "Females stick adhesive eggs on glass and plants after a cool water change.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetras", "Rasboras", "Livebearers", "Dwarf Gourami"},
			AvoidWith: []string{"Large aggressive Cichlids"},
		},
		Category: "catfish",
	},
	{
		ID:             "goldfish",
		CommonName:     "Goldfish",
		ArabicName:     "السمكة الذهبية",
		ScientificName: "Carassius auratus",
		Family:         "Cyprinidae",
		Origin:         "East Asia",
		MinSizeCM:      10,
		MaxSizeCM:      30,
		LifespanYears:  15,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  100,
		Water:          WaterParameters{TempMinC: 16, TempMaxC: 24, PHMin: 7.0, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Goldfish pellets", "Vegetables", "Bloodworms"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Seasonal temperature rise", "Spawning mops or fine plants"},
			Notes:      "Scatters adhesive eggs at dawn; adults eat eggs, so separate them.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Other Goldfish", "White Cloud Minnow", "Dojo Loach"},
			AvoidWith: []string{"Tropical community fish", "Fin nippers"},
		},
		Category: "goldfish",
	},
	{
		ID:             "platy",
		CommonName:     "Platy",
		ArabicName:     "سمكة البلاتي",
		ScientificName: "Xiphophorus maculatus",
		Family:         "Poeciliidae",
		Origin:         "Central and South America",
		MinSizeCM:      4,
		MaxSizeCM:      7,
		LifespanYears:  3,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 7.0, PHMax: 8.3, Hardness: "hard"},
		Diet:           []string{"Flakes", "Pellets", "Vegetables", "Live foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodLiveBearer,
			Triggers:   []string{"Stable warm water", "Frequent small feedings"},
			Notes:      "Females drop live fry about every four weeks; dense plants shelter the young.",
		},
		Schooling:    false,
		MinimumGroup: 3,
		Compatibility: Compatibility{
			GoodWith:  []string{"Guppy", "Molly", "Swordtail", "Tetra", "Corydoras"},
			AvoidWith: []string{"Bettas", "Large aggressive Cichlids"},
		},
		Category: "livebearer",
	},
	{
		ID:             "cardinal-tetra",
		CommonName:     "Cardinal Tetra",
		ArabicName:     "تترا كاردينال",
		ScientificName: "Paracheirodon axelrodi",
		Family:         "Characidae",
		Origin:         "South America, Amazon basin",
		MinSizeCM:      3,
		MaxSizeCM:      5,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 23, TempMaxC: 27, PHMin: 5.5, PHMax: 7.0, Hardness: "soft"},
		Diet:           []string{"Micro pellets", "Flakes", "Frozen foods", "Live foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Triggers:   []string{"Very soft acidic blackwater", "Dim light", "Live food conditioning"},
			Notes:      "Among the hardest tetras to spawn; eggs and fry tolerate almost no light.",
		},
		Schooling:    true,
		MinimumGroup: 10,
		Compatibility: Compatibility{
			GoodWith:  []string{"Neon Tetra", "Harlequin Rasbora", "Corydoras", "Discus"},
			AvoidWith: []string{"Large Cichlids", "Angelfish", "Aggressive fish"},
		},
		Category: "tetra",
	},
	{
		ID:             "molly",
		CommonName:     "Molly",
		ArabicName:     "سمكة مولي",
		ScientificName: "Poecilia sphenops",
		Family:         "Poeciliidae",
		Origin:         "Central and South America",
		MinSizeCM:      6,
		MaxSizeCM:      12,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 7.0, PHMax: 8.5, Hardness: "hard"},
		Diet:           []string{"Algae", "Vegetables", "Flakes", "Live foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodLiveBearer,
			Triggers:   []string{"Hard alkaline water", "Warmth and steady feedings"},
			Notes:      "Broods of twenty to sixty fry appear roughly monthly in good conditions.",
		},
		Schooling:    false,
		MinimumGroup: 3,
		Compatibility: Compatibility{
			GoodWith:  []string{"Platy", "Guppy", "Swordtail", "Larger Tetras"},
			AvoidWith: []string{"Bettas", "Aggressive Cichlids", "Fin-nippers"},
		},
		Category: "livebearer",
	},
	{
		ID:             "dwarf-gourami",
		CommonName:     "Dwarf Gourami",
		ArabicName:     "جورامي قزم",
		ScientificName: "Trichogaster lalius",
		Family:         "Osphronemidae",
		Origin:         "South Asia, India and Bangladesh",
		MinSizeCM:      6,
		MaxSizeCM:      9,
		LifespanYears:  4,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Flakes", "Pellets", "Brine shrimp", "Bloodworms"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodBubbleNest,
			Triggers:   []string{"Lower the water level", "Raise temperature", "Floating plants"},
			Notes:      "The male builds a nest under floating plants and tends the eggs alone.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetras", "Rasboras", "Corydoras"},
			AvoidWith: []string{"Tiger Barb", "Other male Gouramis"},
		},
		Category: "gourami",
	},
	{
		ID:             "black-skirt-tetra",
		CommonName:     "Black Skirt Tetra",
		ArabicName:     "تترا التنورة السوداء",
		ScientificName: "Gymnocorymbus ternetzi",
		Family:         "Characidae",
		Origin:         "South America",
		MinSizeCM:      5,
		MaxSizeCM:      7,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 26, PHMin: 6.0, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Fine-leaved plants", "Slightly soft water", "Pair conditioning"},
			Notes:      "Egg scatterer; remove the adults as soon as spawning finishes.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Rasbora", "Corydoras", "Platy", "Guppy"},
			AvoidWith: []string{"Long-finned fish (may nip)", "Very small fish"},
		},
		Category: "tetra",
	},
	{
		ID:             "swordtail",
		CommonName:     "Swordtail",
		ArabicName:     "سمكة السيف",
		ScientificName: "Xiphophorus hellerii",
		Family:         "Poeciliidae",
		Origin:         "Central and South America",
		MinSizeCM:      10,
		MaxSizeCM:      15,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 7.0, PHMax: 8.3, Hardness: "hard"},
		Diet:           []string{"Flakes", "Pellets", "Vegetables", "Live foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodLiveBearer,
			Triggers:   []string{"Stable warm water", "A roomy planted tank"},
			Notes:      "Keep more females than males to spread the chasing.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Platy", "Molly", "Guppy", "Tetra", "Corydoras"},
			AvoidWith: []string{"Bettas", "Aggressive Cichlids"},
		},
		Category: "livebearer",
	},
	{
		ID:             "zebra-danio",
		CommonName:     "Zebra Danio",
		ArabicName:     "زيبرا دانيو",
		ScientificName: "Danio rerio",
		Family:         "Cyprinidae",
		Origin:         "South Asia, Ganges basin",
		MinSizeCM:      3,
		MaxSizeCM:      5,
		LifespanYears:  4,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 26, PHMin: 6.5, PHMax: 7.5, Hardness: "medium"},
		Diet:           []string{"Flakes", "Micro pellets", "Daphnia"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Morning light", "Slightly warmer water", "Marble-covered bottom"},
			Notes:      "Scatters non-adhesive eggs over the substrate; very prolific.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetras", "Corydoras", "Rasboras", "Barbs"},
			AvoidWith: []string{"Long-finned slow fish"},
		},
		Category: "community",
	},
	{
		ID:             "tiger-barb",
		CommonName:     "Tiger Barb",
		ArabicName:     "بارب النمر",
		ScientificName: "Puntigrus tetrazona",
		Family:         "Cyprinidae",
		Origin:         "Southeast Asia, Sumatra and Borneo",
		MinSizeCM:      5,
		MaxSizeCM:      7,
		LifespanYears:  6,
		Temperament:    TemperamentSemiAggressive,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 27, PHMin: 6.0, PHMax: 7.5, Hardness: "medium"},
		Diet:           []string{"Flakes", "Pellets", "Bloodworms", "Vegetable matter"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Soft slightly acidic water", "Fine-leaved plants"},
			Notes:      "Egg scatterer; keep in groups of six or more to spread fin nipping.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Other Barbs", "Danios", "Plecos"},
			AvoidWith: []string{"Betta", "Guppy", "Angelfish"},
		},
		Category: "community",
	},
	{
		ID:             "pearl-gourami",
		CommonName:     "Pearl Gourami",
		ArabicName:     "جورامي اللؤلؤ",
		ScientificName: "Trichopodus leerii",
		Family:         "Osphronemidae",
		Origin:         "Southeast Asia",
		MinSizeCM:      10,
		MaxSizeCM:      12,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  100,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodBubbleNest,
			Triggers:   []string{"Lower the water level", "Raise temperature", "Floating cover"},
			Notes:      "The male builds a wide bubble nest and guards the eggs alone.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Rasbora", "Corydoras", "Peaceful Cichlids"},
			AvoidWith: []string{"Aggressive fish", "Fin-nippers"},
		},
		Category: "gourami",
	},
	{
		ID:             "bristlenose-pleco",
		CommonName:     "Bristlenose Pleco",
		ArabicName:     "بليكو شوكي الأنف",
		ScientificName: "Ancistrus sp.",
		Family:         "Loricariidae",
		Origin:         "South America",
		MinSizeCM:      10,
		MaxSizeCM:      15,
		LifespanYears:  12,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  100,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 28, PHMin: 6.5, PHMax: 7.5, Hardness: "medium"},
		Diet:           []string{"Algae wafers", "Vegetables", "Wood", "Sinking pellets"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"A snug cave", "Cooler water change"},
			Notes:      "The male fans and guards the clutch inside the cave until the fry leave.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Most peaceful and semi-aggressive fish"},
			AvoidWith: []string{"Very aggressive Cichlids"},
		},
		Category: "catfish",
	},
	{
		ID:             "kuhli-loach",
		CommonName:     "Kuhli Loach",
		ArabicName:     "كولي لوتش / ثعبان الكولي",
		ScientificName: "Pangio kuhlii",
		Family:         "Cobitidae",
		Origin:         "Southeast Asia",
		MinSizeCM:      8,
		MaxSizeCM:      12,
		LifespanYears:  10,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 5.5, PHMax: 7.0, Hardness: "soft"},
		Diet:           []string{"Sinking pellets", "Bloodworms", "Brine shrimp", "Leftover food"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Triggers:   []string{"Large conditioned group", "Very soft acidic water"},
			Notes:      "Rarely spawned at home; eggs turn up among floating plant roots.",
		},
		Schooling:    true,
		MinimumGroup: 5,
		Compatibility: Compatibility{
			GoodWith:  []string{"Peaceful fish", "Tetra", "Rasbora", "Guppy"},
			AvoidWith: []string{"Large aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "harlequin-rasbora",
		CommonName:     "Harlequin Rasbora",
		ArabicName:     "رازبورا هارليكوين",
		ScientificName: "Trigonostigma heteromorpha",
		Family:         "Cyprinidae",
		Origin:         "Southeast Asia",
		MinSizeCM:      4,
		MaxSizeCM:      5,
		LifespanYears:  6,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Flakes", "Micro pellets", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Soft acidic water", "Broad-leaved plants", "Morning warmth"},
			Notes:      "Unusual for a cyprinid, the eggs are stuck under broad leaves.",
		},
		Schooling:    true,
		MinimumGroup: 8,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Corydoras", "Dwarf Gourami", "Small peaceful fish"},
			AvoidWith: []string{"Large aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "cherry-barb",
		CommonName:     "Cherry Barb",
		ArabicName:     "بارب الكرز",
		ScientificName: "Puntius titteya",
		Family:         "Cyprinidae",
		Origin:         "Sri Lanka",
		MinSizeCM:      4,
		MaxSizeCM:      5,
		LifespanYears:  6,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 23, TempMaxC: 27, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Fine-leaved plants", "Soft water", "Live foods"},
			Notes:      "Scatters a few hundred eggs; the parents eat what they find.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Rasbora", "Corydoras", "Dwarf Gourami", "Platy"},
			AvoidWith: []string{"Large aggressive fish", "Very small fish"},
		},
		Category: "other",
	},
	{
		ID:             "german-blue-ram",
		CommonName:     "German Blue Ram",
		ArabicName:     "رام أزرق ألماني",
		ScientificName: "Mikrogeophagus ramirezi",
		Family:         "Cichlidae",
		Origin:         "South America",
		MinSizeCM:      5,
		MaxSizeCM:      7,
		LifespanYears:  3,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 26, TempMaxC: 30, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Pellets", "Flakes", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Warm soft water", "A flat stone", "Daily live foods"},
			Notes:      "Pairs guard a flat-stone clutch; young pairs often eat their first spawns.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Corydoras", "Peaceful fish"},
			AvoidWith: []string{"Aggressive fish", "Large Cichlids"},
		},
		Category: "cichlid",
	},
	{
		ID:             "otocinclus",
		CommonName:     "Otocinclus Catfish",
		ArabicName:     "أوتوسينكلوس / سمكة التنظيف القزمة",
		ScientificName: "Otocinclus sp.",
		Family:         "Loricariidae",
		Origin:         "South America",
		MinSizeCM:      3,
		MaxSizeCM:      5,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 26, PHMin: 6.5, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Algae", "Algae wafers", "Vegetables", "Biofilm"},
		Breeding: BreedingInfo{
			Difficulty: BreedingDifficult,
			Method:     MethodEggLayer,
			Triggers:   []string{"A pristine mature tank", "Live food conditioning", "Cool water change"},
			Notes:      "Rarely bred; adhesive eggs go on glass and leaves much like corydoras.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Shrimp", "Small peaceful fish", "Tetra"},
			AvoidWith: []string{"Large aggressive fish"},
		},
		Category: "catfish",
	},
	{
		ID:             "discus",
		CommonName:     "Discus",
		ArabicName:     "ديسكس",
		ScientificName: "Symphysodon aequifasciatus",
		Family:         "Cichlidae",
		Origin:         "South America, Amazon basin",
		MinSizeCM:      12,
		MaxSizeCM:      20,
		LifespanYears:  10,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareAdvanced,
		MinTankLiters:  200,
		Water:          WaterParameters{TempMinC: 28, TempMaxC: 31, PHMin: 6.0, PHMax: 7.0, Hardness: "soft"},
		Diet:           []string{"Discus granules", "Beef heart mix", "Bloodworms"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Triggers:   []string{"Very soft warm water", "Daily water changes", "Vertical spawning cone"},
			Notes:      "Fry feed off mucus on the parents' flanks for their first days.",
		},
		Schooling:    true,
		MinimumGroup: 5,
		Compatibility: Compatibility{
			GoodWith:  []string{"Cardinal Tetra", "Rummy Nose Tetra", "Sterbai Corydoras"},
			AvoidWith: []string{"Fast aggressive feeders", "Cool-water species"},
		},
		Category: "cichlid",
	},
	{
		ID:             "rummy-nose-tetra",
		CommonName:     "Rummy Nose Tetra",
		ArabicName:     "تترا الأنف الأحمر",
		ScientificName: "Hemigrammus rhodostomus",
		Family:         "Characidae",
		Origin:         "South America, Amazon basin",
		MinSizeCM:      4,
		MaxSizeCM:      5,
		LifespanYears:  8,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 5.5, PHMax: 7.0, Hardness: "soft"},
		Diet:           []string{"Flakes", "Micro pellets", "Frozen bloodworms", "Brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingDifficult,
			Method:     MethodEggLayer,
			Triggers:   []string{"Very soft warm water", "Dim light"},
			Notes:      "Slow to mature and sensitive; spawns over fine plants like other tetras.",
		},
		Schooling:    true,
		MinimumGroup: 10,
		Compatibility: Compatibility{
			GoodWith:  []string{"Cardinal Tetra", "Neon Tetra", "Corydoras", "Discus"},
			AvoidWith: []string{"Large Cichlids", "Aggressive fish"},
		},
		Category: "tetra",
	},
	{
		ID:             "congo-tetra",
		CommonName:     "Congo Tetra",
		ArabicName:     "تترا الكونغو",
		ScientificName: "Phenacogrammus interruptus",
		Family:         "Alestiidae",
		Origin:         "Africa, Congo basin",
		MinSizeCM:      6,
		MaxSizeCM:      8,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  120,
		Water:          WaterParameters{TempMinC: 23, TempMaxC: 27, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Soft water", "Morning sun", "Spawning mops"},
			Notes:      "Scatters eggs that rest on the bottom and hatch in about six days.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Rainbowfish", "Corydoras", "Peaceful Cichlids"},
			AvoidWith: []string{"Fin-nippers", "Very small fish"},
		},
		Category: "tetra",
	},
	{
		ID:             "endlers-livebearer",
		CommonName:     "Endler's Livebearer",
		ArabicName:     "إندلر",
		ScientificName: "Poecilia wingei",
		Family:         "Poeciliidae",
		Origin:         "Venezuela",
		MinSizeCM:      2,
		MaxSizeCM:      3.5,
		LifespanYears:  3,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 7.0, PHMax: 8.5, Hardness: "hard"},
		Diet:           []string{"Flakes", "Micro pellets", "Live foods", "Algae"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodLiveBearer,
			Triggers:   []string{"Warm hard water", "Frequent meals"},
			Notes:      "Prolific live-bearer; keep away from guppies or the lines hybridize.",
		},
		Schooling:    false,
		MinimumGroup: 3,
		Compatibility: Compatibility{
			GoodWith:  []string{"Shrimp", "Corydoras", "Small Tetras", "Otocinclus"},
			AvoidWith: []string{"Large fish", "Guppies (hybridize)"},
		},
		Category: "livebearer",
	},
	{
		ID:             "honey-gourami",
		CommonName:     "Honey Gourami",
		ArabicName:     "جورامي العسل",
		ScientificName: "Trichogaster chuna",
		Family:         "Osphronemidae",
		Origin:         "South Asia, India and Bangladesh",
		MinSizeCM:      4,
		MaxSizeCM:      6,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodBubbleNest,
			Triggers:   []string{"Lower the water level", "Raise temperature", "Floating plants"},
			Notes:      "The male builds a modest bubble nest and tends the eggs alone.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Rasbora", "Corydoras", "Small peaceful fish"},
			AvoidWith: []string{"Aggressive fish", "Large Cichlids"},
		},
		Category: "gourami",
	},
	{
		ID:             "white-cloud-mountain-minnow",
		CommonName:     "White Cloud Mountain Minnow",
		ArabicName:     "مينو السحابة البيضاء",
		ScientificName: "Tanichthys albonubes",
		Family:         "Cyprinidae",
		Origin:         "China",
		MinSizeCM:      3,
		MaxSizeCM:      4,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 15, TempMaxC: 22, PHMin: 6.0, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Flakes", "Micro pellets", "Live foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Cool water", "Fine plants or mops"},
			Notes:      "Scatters eggs daily in cool water; the adults mostly ignore the fry.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Other cold water fish", "Hillstream Loach", "Goldfish (small)"},
			AvoidWith: []string{"Tropical fish", "Large aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "celestial-pearl-danio",
		CommonName:     "Celestial Pearl Danio",
		ArabicName:     "دانيو اللؤلؤ السماوي / جالاكسي رازبورا",
		ScientificName: "Danio margaritatus",
		Family:         "Cyprinidae",
		Origin:         "Myanmar",
		MinSizeCM:      1.5,
		MaxSizeCM:      2.5,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 25, PHMin: 6.5, PHMax: 7.5, Hardness: "medium"},
		Diet:           []string{"Micro pellets", "Crushed flakes", "Baby brine shrimp", "Daphnia"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Dense moss", "A cooler water change"},
			Notes:      "Drops small egg batches in moss; collect them before the adults graze.",
		},
		Schooling:    true,
		MinimumGroup: 8,
		Compatibility: Compatibility{
			GoodWith:  []string{"Small Rasbora", "Shrimp", "Otocinclus", "Small Tetras"},
			AvoidWith: []string{"Large or aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "boesemani-rainbow",
		CommonName:     "Boesemani Rainbow",
		ArabicName:     "رينبو بوسماني",
		ScientificName: "Melanotaenia boesemani",
		Family:         "Melanotaeniidae",
		Origin:         "Indonesia, West Papua",
		MinSizeCM:      8,
		MaxSizeCM:      12,
		LifespanYears:  8,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  150,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 7.0, PHMax: 8.5, Hardness: "hard"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Morning light", "Spawning mops", "Hard alkaline water"},
			Notes:      "Lays a few eggs daily over weeks; hatching takes about a week.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Other Rainbowfish", "Corydoras", "Large Tetras", "Loaches"},
			AvoidWith: []string{"Very small fish", "Slow moving fish"},
		},
		Category: "other",
	},
	{
		ID:             "panda-corydoras",
		CommonName:     "Panda Corydoras",
		ArabicName:     "كوريدوراس الباندا",
		ScientificName: "Corydoras panda",
		Family:         "Callichthyidae",
		Origin:         "South America, Peru",
		MinSizeCM:      4,
		MaxSizeCM:      5,
		LifespanYears:  10,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 25, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Sinking pellets", "Wafers", "Bloodworms", "Leftover food"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Cool water change", "High-protein conditioning"},
			Notes:      "Sticks adhesive eggs on glass and plants, usually after a cool change.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Most peaceful fish", "Tetra", "Guppy", "Rasbora"},
			AvoidWith: []string{"Large aggressive Cichlids"},
		},
		Category: "catfish",
	},
	{
		ID:             "siamese-algae-eater",
		CommonName:     "Siamese Algae Eater",
		ArabicName:     "آكل الطحالب السيامي",
		ScientificName: "Crossocheilus oblongus",
		Family:         "Cyprinidae",
		Origin:         "Southeast Asia",
		MinSizeCM:      12,
		MaxSizeCM:      16,
		LifespanYears:  10,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  120,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.5, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Algae", "Algae wafers", "Vegetables", "Sinking pellets"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Notes:      "Not bred in home aquaria; commercial stock is hormone spawned on farms.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Most community fish", "Rainbowfish", "Large Tetras"},
			AvoidWith: []string{"Very small fish (when adult)", "Aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "keyhole-cichlid",
		CommonName:     "Keyhole Cichlid",
		ArabicName:     "سيكلد ثقب المفتاح",
		ScientificName: "Cleithracara maronii",
		Family:         "Cichlidae",
		Origin:         "South America",
		MinSizeCM:      8,
		MaxSizeCM:      12,
		LifespanYears:  8,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  100,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Pellets", "Flakes", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"A flat stone or root", "Soft slightly acidic water"},
			Notes:      "Shy biparental guarder; both parents tend the eggs and fry.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Corydoras", "Angelfish", "Other peaceful Cichlids"},
			AvoidWith: []string{"Aggressive Cichlids", "Very small fish"},
		},
		Category: "cichlid",
	},
	{
		ID:             "clown-loach",
		CommonName:     "Clown Loach",
		ArabicName:     "لوتش المهرج",
		ScientificName: "Chromobotia macracanthus",
		Family:         "Botiidae",
		Origin:         "Indonesia, Borneo and Sumatra",
		MinSizeCM:      15,
		MaxSizeCM:      30,
		LifespanYears:  25,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  300,
		Water:          WaterParameters{TempMinC: 25, TempMaxC: 30, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Sinking pellets", "Bloodworms", "Snails", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Triggers:   []string{"Seasonal cool flow"},
			Notes:      "Not spawned in home tanks; commercial fry come from farm hormone breeding.",
		},
		Schooling:    true,
		MinimumGroup: 5,
		Compatibility: Compatibility{
			GoodWith:  []string{"Large community fish", "Rainbowfish", "Large Tetras"},
			AvoidWith: []string{"Very small fish", "Aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "yoyo-loach",
		CommonName:     "Yoyo Loach",
		ArabicName:     "لوتش يويو",
		ScientificName: "Botia almorhae",
		Family:         "Botiidae",
		Origin:         "South Asia, India",
		MinSizeCM:      10,
		MaxSizeCM:      15,
		LifespanYears:  10,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  120,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.5, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Sinking pellets", "Bloodworms", "Snails", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingDifficult,
			Method:     MethodEggLayer,
			Triggers:   []string{"Cool flowing water", "Heavy conditioning"},
			Notes:      "Home spawns are nearly unheard of; most stock is wild or farm bred.",
		},
		Schooling:    true,
		MinimumGroup: 5,
		Compatibility: Compatibility{
			GoodWith:  []string{"Most community fish", "Tetras", "Rainbowfish"},
			AvoidWith: []string{"Very small fish", "Slow fish"},
		},
		Category: "other",
	},
	{
		ID:             "ember-tetra",
		CommonName:     "Ember Tetra",
		ArabicName:     "تترا الجمر",
		ScientificName: "Hyphessobrycon amandae",
		Family:         "Characidae",
		Origin:         "Brazil",
		MinSizeCM:      1.5,
		MaxSizeCM:      2,
		LifespanYears:  4,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  30,
		Water:          WaterParameters{TempMinC: 23, TempMaxC: 29, PHMin: 5.5, PHMax: 7.0, Hardness: "soft"},
		Diet:           []string{"Micro pellets", "Crushed flakes", "Baby brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Soft acidic water", "Dense fine plants"},
			Notes:      "Spawns continuously in good condition; fry appear in heavy moss.",
		},
		Schooling:    true,
		MinimumGroup: 8,
		Compatibility: Compatibility{
			GoodWith:  []string{"Small Tetras", "Shrimp", "Rasbora", "Otocinclus"},
			AvoidWith: []string{"Large fish", "Aggressive fish"},
		},
		Category: "tetra",
	},
	{
		ID:             "bleeding-heart-tetra",
		CommonName:     "Bleeding Heart Tetra",
		ArabicName:     "تترا القلب النازف",
		ScientificName: "Hyphessobrycon erythrostigma",
		Family:         "Characidae",
		Origin:         "South America",
		MinSizeCM:      5,
		MaxSizeCM:      7,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 23, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Very soft water", "Live food conditioning"},
			Notes:      "Spawns like other tetras but needs notably soft water to trigger.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Other Tetras", "Corydoras", "Rasbora", "Gouramis"},
			AvoidWith: []string{"Fin-nippers", "Aggressive fish"},
		},
		Category: "tetra",
	},
	{
		ID:             "chili-rasbora",
		CommonName:     "Chili Rasbora",
		ArabicName:     "رازبورا الفلفل الحار",
		ScientificName: "Boraras brigittae",
		Family:         "Cyprinidae",
		Origin:         "Indonesia, Borneo",
		MinSizeCM:      1.5,
		MaxSizeCM:      2,
		LifespanYears:  6,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 28, PHMin: 4.0, PHMax: 7.0, Hardness: "soft"},
		Diet:           []string{"Micro pellets", "Crushed flakes", "Daphnia", "Baby brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Very soft tannin-stained water", "Dense moss"},
			Notes:      "Drops tiny eggs daily in moss; fry need infusoria for their first days.",
		},
		Schooling:    true,
		MinimumGroup: 10,
		Compatibility: Compatibility{
			GoodWith:  []string{"Shrimp", "Small Tetras", "Otocinclus", "Celestial Pearl Danio"},
			AvoidWith: []string{"Any large fish"},
		},
		Category: "other",
	},
	{
		ID:             "scarlet-badis",
		CommonName:     "Scarlet Badis",
		ArabicName:     "باديس القرمزي",
		ScientificName: "Dario dario",
		Family:         "Badidae",
		Origin:         "India",
		MinSizeCM:      1.5,
		MaxSizeCM:      2,
		LifespanYears:  4,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 26, PHMin: 6.5, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Frozen foods only", "Bloodworms", "Daphnia", "Brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Live foods only", "Dense planting"},
			Notes:      "The male courts inside a small territory and places eggs in plant thickets.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Shrimp (large)", "Small peaceful fish", "Otocinclus"},
			AvoidWith: []string{"Large fish", "Aggressive fish", "Fish that compete for food"},
		},
		Category: "other",
	},
	{
		ID:             "peacock-gudgeon",
		CommonName:     "Peacock Gudgeon",
		ArabicName:     "غادجون الطاووس",
		ScientificName: "Tateurndina ocellicauda",
		Family:         "Eleotridae",
		Origin:         "Papua New Guinea",
		MinSizeCM:      5,
		MaxSizeCM:      7,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 26, PHMin: 6.5, PHMax: 7.5, Hardness: "medium"},
		Diet:           []string{"Frozen foods", "Pellets", "Bloodworms", "Brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"A small cave or tube", "Live food conditioning"},
			Notes:      "The male guards the clutch inside a cave until hatching.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Small peaceful fish", "Corydoras", "Tetras", "Rasbora"},
			AvoidWith: []string{"Large aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "golden-wonder-killifish",
		CommonName:     "Golden Wonder Killifish",
		ArabicName:     "كيلي فيش الذهبي",
		ScientificName: "Aplocheilus lineatus",
		Family:         "Aplocheilidae",
		Origin:         "India and Sri Lanka",
		MinSizeCM:      8,
		MaxSizeCM:      10,
		LifespanYears:  4,
		Temperament:    TemperamentSemiAggressive,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Floating pellets", "Live foods", "Insects", "Bloodworms"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Spawning mops near the surface", "Live foods"},
			Notes:      "Sticks eggs in floating mops daily; collect them to raise the fry.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Large peaceful fish", "Bottom dwellers"},
			AvoidWith: []string{"Small fish (will eat them)", "Fin-nippers"},
		},
		Category: "other",
	},
	{
		ID:             "bolivian-ram",
		CommonName:     "Bolivian Ram",
		ArabicName:     "رام بوليفي",
		ScientificName: "Mikrogeophagus altispinosus",
		Family:         "Cichlidae",
		Origin:         "Bolivia and Brazil",
		MinSizeCM:      6,
		MaxSizeCM:      8,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 26, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Pellets", "Flakes", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"A flat stone", "Soft slightly warm water"},
			Notes:      "Calmer than the German ram; pairs guard stone clutches together.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Corydoras", "Rasbora", "Other peaceful fish"},
			AvoidWith: []string{"Aggressive Cichlids"},
		},
		Category: "cichlid",
	},
	{
		ID:             "apistogramma-cacatuoides",
		CommonName:     "Cockatoo Dwarf Cichlid",
		ArabicName:     "أبيستوغراما الكوكاتو",
		ScientificName: "Apistogramma cacatuoides",
		Family:         "Cichlidae",
		Origin:         "South America, Amazon basin",
		MinSizeCM:      5,
		MaxSizeCM:      8,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Pellets", "Flakes", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"A snug cave", "Soft water", "Live foods"},
			Notes:      "The female turns yellow and tends the cave clutch while the male patrols.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Corydoras", "Rasbora", "Otocinclus"},
			AvoidWith: []string{"Other male Apistogramma", "Aggressive fish"},
		},
		Category: "cichlid",
	},
	{
		ID:             "kribensis",
		CommonName:     "Kribensis",
		ArabicName:     "كريبنسيس / سيكلد قوس قزح",
		ScientificName: "Pelvicachromis pulcher",
		Family:         "Cichlidae",
		Origin:         "Africa, Nigeria",
		MinSizeCM:      8,
		MaxSizeCM:      10,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Pellets", "Flakes", "Live foods", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"A cave", "Slightly soft water"},
			Notes:      "Reliable cave spawner; both parents shepherd the fry around the tank.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Tetra", "Corydoras", "Rainbowfish", "Most community fish"},
			AvoidWith: []string{"Bottom dwellers during breeding", "Aggressive fish"},
		},
		Category: "cichlid",
	},
	{
		ID:             "electric-blue-acara",
		CommonName:     "Electric Blue Acara",
		ArabicName:     "أكارا أزرق كهربائي",
		ScientificName: "Andinoacara pulcher",
		Family:         "Cichlidae",
		Origin:         "South America, captive strain",
		MinSizeCM:      12,
		MaxSizeCM:      18,
		LifespanYears:  10,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  120,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 6.5, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Pellets", "Flakes", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"A flat stone", "Warm water", "Heavy feeding"},
			Notes:      "Easy biparental substrate spawner; broods run to several hundred.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Large Tetras", "Corydoras", "Rainbowfish", "Severum"},
			AvoidWith: []string{"Very small fish", "Aggressive Cichlids"},
		},
		Category: "cichlid",
	},
	{
		ID:             "glass-catfish",
		CommonName:     "Glass Catfish",
		ArabicName:     "سمكة القط الزجاجية",
		ScientificName: "Kryptopterus vitreolus",
		Family:         "Siluridae",
		Origin:         "Thailand",
		MinSizeCM:      8,
		MaxSizeCM:      15,
		LifespanYears:  8,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  100,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.5, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Frozen foods", "Live foods", "Flakes (sometimes)"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Triggers:   []string{"Seasonal rain simulation", "Cooler soft water"},
			Notes:      "Practically never spawned in aquaria; mimicking monsoon rains is the only known lead.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Peaceful fish", "Tetras", "Rasbora", "Corydoras"},
			AvoidWith: []string{"Aggressive fish", "Large fish"},
		},
		Category: "catfish",
	},
	{
		ID:             "sterbai-corydoras",
		CommonName:     "Sterbai Corydoras",
		ArabicName:     "كوريدوراس ستيرباي",
		ScientificName: "Corydoras sterbai",
		Family:         "Callichthyidae",
		Origin:         "Brazil, Guapore river",
		MinSizeCM:      5,
		MaxSizeCM:      7,
		LifespanYears:  15,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  60,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 6.0, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Sinking pellets", "Wafers", "Bloodworms", "Brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Cool water change", "Oxygen-rich water", "High-protein conditioning"},
			Notes:      "Classic corydoras spawner; eggs go on the glass after a cool change.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Most peaceful fish", "Discus", "German Blue Ram", "Tetras"},
			AvoidWith: []string{"Large aggressive fish"},
		},
		Category: "catfish",
	},
	{
		ID:             "odessa-barb",
		CommonName:     "Odessa Barb",
		ArabicName:     "بارب أوديسا",
		ScientificName: "Pethia padamya",
		Family:         "Cyprinidae",
		Origin:         "Myanmar",
		MinSizeCM:      4,
		MaxSizeCM:      5,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 26, PHMin: 6.5, PHMax: 7.5, Hardness: "medium"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Fine-leaved plants", "Soft water"},
			Notes:      "Egg scatterer; spawns readily in a planted species tank.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Other Barbs", "Rainbowfish", "Tetras", "Loaches"},
			AvoidWith: []string{"Slow fish with long fins"},
		},
		Category: "other",
	},
	{
		ID:             "denison-barb",
		CommonName:     "Denison Barb",
		ArabicName:     "بارب دينيسون / روزلاين شارك",
		ScientificName: "Sahyadria denisonii",
		Family:         "Cyprinidae",
		Origin:         "India, Kerala",
		MinSizeCM:      10,
		MaxSizeCM:      15,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  200,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 25, PHMin: 6.5, PHMax: 7.8, Hardness: "medium"},
		Diet:           []string{"Flakes", "Pellets", "Live foods", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Triggers:   []string{"Cool oxygen-rich water"},
			Notes:      "Hardly ever bred privately; commercial stock is hormone induced.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Large peaceful fish", "Rainbowfish", "Large Tetras"},
			AvoidWith: []string{"Very small fish", "Aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "forktail-rainbowfish",
		CommonName:     "Forktail Blue Eye Rainbowfish",
		ArabicName:     "رينبو العين الزرقاء",
		ScientificName: "Pseudomugil furcatus",
		Family:         "Pseudomugilidae",
		Origin:         "Papua New Guinea",
		MinSizeCM:      4,
		MaxSizeCM:      5,
		LifespanYears:  3,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 24, TempMaxC: 28, PHMin: 7.0, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Flakes", "Micro pellets", "Live foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Spawning mops", "Morning light"},
			Notes:      "Lays a few eggs daily in mops; hatching takes around ten days.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Small peaceful fish", "Shrimp", "Tetras", "Rasbora"},
			AvoidWith: []string{"Large fish", "Aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "clown-killifish",
		CommonName:     "Clown Killifish",
		ArabicName:     "كيلي فيش المهرج",
		ScientificName: "Epiplatys annulatus",
		Family:         "Nothobranchiidae",
		Origin:         "West Africa",
		MinSizeCM:      3,
		MaxSizeCM:      4,
		LifespanYears:  3,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 26, PHMin: 6.0, PHMax: 7.0, Hardness: "soft"},
		Diet:           []string{"Micro foods", "Live foods", "Frozen foods"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Shallow still water", "Floating plants"},
			Notes:      "Eggs hang in floating roots; the fry stay right at the surface film.",
		},
		Schooling:    false,
		MinimumGroup: 3,
		Compatibility: Compatibility{
			GoodWith:  []string{"Small peaceful fish", "Shrimp", "Ember Tetra"},
			AvoidWith: []string{"Large fish", "Fast aggressive fish"},
		},
		Category: "other",
	},
	{
		ID:             "pygmy-corydoras",
		CommonName:     "Pygmy Corydoras",
		ArabicName:     "كوريدوراس قزم",
		ScientificName: "Corydoras pygmaeus",
		Family:         "Callichthyidae",
		Origin:         "Brazil, Madeira river",
		MinSizeCM:      2,
		MaxSizeCM:      3,
		LifespanYears:  3,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  30,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 26, PHMin: 6.5, PHMax: 7.5, Hardness: "soft"},
		Diet:           []string{"Micro pellets", "Crushed flakes", "Baby brine shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Cool water change", "Micro foods on hand"},
			Notes:      "Sticks single eggs on plants; the tiny fry need micro foods.",
		},
		Schooling:    true,
		MinimumGroup: 8,
		Compatibility: Compatibility{
			GoodWith:  []string{"Small peaceful fish", "Shrimp", "Ember Tetra", "Chili Rasbora"},
			AvoidWith: []string{"Any large fish"},
		},
		Category: "catfish",
	},
	{
		ID:             "cherry-shrimp",
		CommonName:     "Cherry Shrimp",
		ArabicName:     "روبيان الكرز",
		ScientificName: "Neocaridina davidi",
		Family:         "Atyidae",
		Origin:         "East Asia, Taiwan",
		MinSizeCM:      1.5,
		MaxSizeCM:      3,
		LifespanYears:  2,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 28, PHMin: 6.5, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Biofilm", "Algae wafers", "Blanched vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Stable parameters", "Plenty of biofilm"},
			Notes:      "Females carry the eggs under the tail until miniature shrimp hatch out.",
		},
		Schooling:    true,
		MinimumGroup: 10,
		Compatibility: Compatibility{
			GoodWith:  []string{"Otocinclus", "Small Rasboras", "Snails"},
			AvoidWith: []string{"Most fish large enough to eat them"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "amano-shrimp",
		CommonName:     "Amano Shrimp",
		ArabicName:     "جمبري أمانو",
		ScientificName: "Caridina multidentata",
		Family:         "Atyidae",
		Origin:         "Japan and Taiwan",
		MinSizeCM:      3,
		MaxSizeCM:      6,
		LifespanYears:  3,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 26, PHMin: 6.5, PHMax: 7.5, Hardness: "medium"},
		Diet:           []string{"Algae", "Biofilm", "Shrimp pellets", "Dead plant matter", "Soft algae"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Triggers:   []string{"Brackish water for the larvae"},
			Notes:      "Larvae must develop in brackish water, so home breeding almost never succeeds.",
		},
		Schooling:    true,
		MinimumGroup: 6,
		Compatibility: Compatibility{
			GoodWith:  []string{"Peaceful fish", "Other shrimp", "Snails"},
			AvoidWith: []string{"Large Cichlids", "Bettas", "Aggressive fish"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "blue-dream-shrimp",
		CommonName:     "Blue Dream Shrimp",
		ArabicName:     "جمبري الحلم الأزرق",
		ScientificName: "Neocaridina davidi var. Blue",
		Family:         "Atyidae",
		Origin:         "Taiwan, selective breeding",
		MinSizeCM:      1.5,
		MaxSizeCM:      3,
		LifespanYears:  2,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 28, PHMin: 6.5, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Algae", "Biofilm", "Shrimp pellets", "Blanched vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Stable parameters", "Plenty of biofilm"},
			Notes:      "Breeds exactly like the cherry shrimp; cull off-colored offspring to hold the line.",
		},
		Schooling:    true,
		MinimumGroup: 10,
		Compatibility: Compatibility{
			GoodWith:  []string{"Other shrimp (same color!)", "Snails", "Nano fish"},
			AvoidWith: []string{"Different colored shrimp", "Predatory fish"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "crystal-red-shrimp",
		CommonName:     "Crystal Red Shrimp",
		ArabicName:     "جمبري الكريستال الأحمر",
		ScientificName: "Caridina cantonensis",
		Family:         "Atyidae",
		Origin:         "China and Hong Kong",
		MinSizeCM:      2,
		MaxSizeCM:      3,
		LifespanYears:  2,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareAdvanced,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 24, PHMin: 5.8, PHMax: 6.8, Hardness: "soft"},
		Diet:           []string{"Biofilm", "Shrimp pellets", "Blanched vegetables", "Mineral supplements"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Soft acidic water", "Very stable cool temperature"},
			Notes:      "Needs soft stable water; females carry the eggs for about a month.",
		},
		Schooling:    true,
		MinimumGroup: 10,
		Compatibility: Compatibility{
			GoodWith:  []string{"Other Caridina", "Snails", "Peaceful nano fish"},
			AvoidWith: []string{"Neocaridina", "Any fish", "Fluctuating parameters"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "blue-crayfish",
		CommonName:     "Blue Crayfish / Blue Lobster",
		ArabicName:     "جراد البحر الأزرق / اللوبستر الأزرق",
		ScientificName: "Procambarus alleni",
		Family:         "Cambaridae",
		Origin:         "Florida, United States",
		MinSizeCM:      10,
		MaxSizeCM:      15,
		LifespanYears:  5,
		Temperament:    TemperamentAggressive,
		CareLevel:      CareIntermediate,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 26, PHMin: 6.5, PHMax: 8.0, Hardness: "hard"},
		Diet:           []string{"Sinking pellets", "Vegetables", "Protein (fish, shrimp)", "Calcium supplements"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"A well-fed pair", "Plenty of cover"},
			Notes:      "The female carries the berried clutch under her tail for about four weeks.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Large fast fish (with caution)", "Giant Danios"},
			AvoidWith: []string{"Small fish", "Shrimp", "Snails", "Bottom dwellers", "Other crayfish"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "dwarf-orange-crayfish",
		CommonName:     "Dwarf Orange Crayfish",
		ArabicName:     "جراد قزم برتقالي",
		ScientificName: "Cambarellus patzcuarensis",
		Family:         "Cambaridae",
		Origin:         "Mexico",
		MinSizeCM:      3,
		MaxSizeCM:      5,
		LifespanYears:  2,
		Temperament:    TemperamentSemiAggressive,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 26, PHMin: 6.5, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Sinking pellets", "Vegetables", "Algae wafers", "Occasional protein"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Stable water", "Hiding places"},
			Notes:      "Small broods; the female carries the eggs until miniature crayfish disperse.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Fast mid-level fish", "Large shrimp (with caution)"},
			AvoidWith: []string{"Small shrimp", "Slow fish", "Other crayfish"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "mystery-snail",
		CommonName:     "Mystery Snail",
		ArabicName:     "حلزون الغموض",
		ScientificName: "Pomacea bridgesii",
		Family:         "Ampullariidae",
		Origin:         "South America",
		MinSizeCM:      4,
		MaxSizeCM:      6,
		LifespanYears:  1,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 20, TempMaxC: 28, PHMin: 7.0, PHMax: 8.0, Hardness: "hard"},
		Diet:           []string{"Algae", "Blanched vegetables", "Sinking pellets"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"Air gap above the waterline", "Warm humid hood"},
			Notes:      "Lays a pink egg clutch above the waterline; keep the hood humid.",
		},
		Schooling:    false,
		MinimumGroup: 1,
		Compatibility: Compatibility{
			GoodWith:  []string{"Community fish", "Shrimp"},
			AvoidWith: []string{"Loaches", "Assassin Snails", "Large Cichlids"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "nerite-snail",
		CommonName:     "Nerite Snail",
		ArabicName:     "حلزون نيريت",
		ScientificName: "Neritina sp.",
		Family:         "Neritidae",
		Origin:         "Africa and Asia",
		MinSizeCM:      1.5,
		MaxSizeCM:      3,
		LifespanYears:  2,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  20,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 7.0, PHMax: 8.5, Hardness: "hard"},
		Diet:           []string{"Algae (primary)", "Biofilm", "Algae wafers"},
		Breeding: BreedingInfo{
			Difficulty: BreedingExpert,
			Method:     MethodEggLayer,
			Triggers:   []string{"Brackish water for the larvae"},
			Notes:      "Lays hard white eggs everywhere, but the larvae only develop in brackish water.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"All peaceful fish", "Shrimp", "Other snails"},
			AvoidWith: []string{"Pufferfish", "Loaches"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "ramshorn-snail",
		CommonName:     "Ramshorn Snail",
		ArabicName:     "حلزون قرن الكبش",
		ScientificName: "Planorbella duryi",
		Family:         "Planorbidae",
		Origin:         "North America, now worldwide",
		MinSizeCM:      0.5,
		MaxSizeCM:      3,
		LifespanYears:  1,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  10,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 28, PHMin: 6.5, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Algae", "Dead plant matter", "Leftover food", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodEggLayer,
			Triggers:   []string{"A steady food supply"},
			Notes:      "Lays jelly egg masses constantly; the population tracks feeding.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Everything"},
			AvoidWith: []string{"Pufferfish", "Loaches", "Assassin snails"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "assassin-snail",
		CommonName:     "Assassin Snail",
		ArabicName:     "حلزون القاتل",
		ScientificName: "Clea helena",
		Family:         "Buccinidae",
		Origin:         "Southeast Asia",
		MinSizeCM:      2,
		MaxSizeCM:      3,
		LifespanYears:  3,
		Temperament:    TemperamentSemiAggressive,
		CareLevel:      CareBeginner,
		MinTankLiters:  30,
		Water:          WaterParameters{TempMinC: 22, TempMaxC: 28, PHMin: 6.5, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Other snails", "Protein foods", "Sinking pellets", "Dead fish/shrimp"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodEggLayer,
			Triggers:   []string{"Meaty foods", "A mated pair"},
			Notes:      "Lays single square egg capsules; juveniles stay buried for months.",
		},
		Schooling:    false,
		MinimumGroup: 3,
		Compatibility: Compatibility{
			GoodWith:  []string{"Fish", "Shrimp", "Large snails (Mystery, Nerite)"},
			AvoidWith: []string{"Small pest snails (will eat them)", "Trumpet snails"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "malaysian-trumpet-snail",
		CommonName:     "Malaysian Trumpet Snail",
		ArabicName:     "حلزون البوق الماليزي",
		ScientificName: "Melanoides tuberculata",
		Family:         "Thiaridae",
		Origin:         "Africa and Asia",
		MinSizeCM:      1,
		MaxSizeCM:      3,
		LifespanYears:  2,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  10,
		Water:          WaterParameters{TempMinC: 18, TempMaxC: 30, PHMin: 6.5, PHMax: 8.5, Hardness: "medium"},
		Diet:           []string{"Detritus", "Algae", "Dead plant matter", "Leftover food"},
		Breeding: BreedingInfo{
			Difficulty: BreedingEasy,
			Method:     MethodLiveBearer,
			Triggers:   []string{"A steady food supply"},
			Notes:      "Live-bearing and parthenogenetic; one snail becomes a colony.",
		},
		Schooling:    false,
		MinimumGroup: 5,
		Compatibility: Compatibility{
			GoodWith:  []string{"All peaceful fish", "Shrimp", "Plants"},
			AvoidWith: []string{"Assassin snails", "Loaches", "Pufferfish"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "japanese-trapdoor-snail",
		CommonName:     "Japanese Trapdoor Snail",
		ArabicName:     "الحلزون الياباني",
		ScientificName: "Cipangopaludina japonica",
		Family:         "Viviparidae",
		Origin:         "Japan and East Asia",
		MinSizeCM:      4,
		MaxSizeCM:      6,
		LifespanYears:  5,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareBeginner,
		MinTankLiters:  40,
		Water:          WaterParameters{TempMinC: 10, TempMaxC: 26, PHMin: 6.5, PHMax: 8.0, Hardness: "medium"},
		Diet:           []string{"Algae", "Dead plant matter", "Algae wafers", "Vegetables"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodLiveBearer,
			Triggers:   []string{"A cool seasonal cycle"},
			Notes:      "Releases a few fully formed young at a time.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Goldfish", "Koi", "Peaceful community fish"},
			AvoidWith: []string{"Tropical fish (too warm)", "Loaches", "Pufferfish"},
		},
		Category: "invertebrate",
	},
	{
		ID:             "rabbit-snail",
		CommonName:     "Rabbit Snail",
		ArabicName:     "حلزون الأرنب",
		ScientificName: "Tylomelania sp.",
		Family:         "Pachychilidae",
		Origin:         "Indonesia, Sulawesi",
		MinSizeCM:      5,
		MaxSizeCM:      12,
		LifespanYears:  3,
		Temperament:    TemperamentPeaceful,
		CareLevel:      CareIntermediate,
		MinTankLiters:  80,
		Water:          WaterParameters{TempMinC: 26, TempMaxC: 30, PHMin: 7.5, PHMax: 8.5, Hardness: "hard"},
		Diet:           []string{"Algae", "Vegetables", "Sinking pellets", "Calcium supplements"},
		Breeding: BreedingInfo{
			Difficulty: BreedingModerate,
			Method:     MethodLiveBearer,
			Triggers:   []string{"Warm hard water", "A calcium supply"},
			Notes:      "One large egg capsule releases a single crawling young.",
		},
		Schooling:    false,
		MinimumGroup: 2,
		Compatibility: Compatibility{
			GoodWith:  []string{"Peaceful tropical fish", "Shrimp", "Other snails"},
			AvoidWith: []string{"Cold water fish", "Loaches", "Pufferfish"},
		},
		Category: "invertebrate",
	},
}
