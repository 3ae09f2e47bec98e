package refdata

// Built-in tables used when no DATA_DIR workbooks are configured. Systems
// follow NSM-22 Tabla 6.1 (R, Ω₀, Cd); accelerations are rock PGA in g.

func ll(lat, lon float64) *LatLon {
	return &LatLon{Lat: lat, Lon: lon}
}

var defaultSites = []Site{
	{Name: "MANAGUA", A0: 0.387, Location: ll(12.1364, -86.2514)},
	{Name: "CIUDAD SANDINO", A0: 0.372, Location: ll(12.1589, -86.3447)},
	{Name: "TIPITAPA", A0: 0.351, Location: ll(12.1967, -86.0969)},
	{Name: "MATEARE", A0: 0.360, Location: ll(12.2364, -86.4292)},
	{Name: "TICUANTEPE", A0: 0.355, Location: ll(12.0228, -86.2019)},
	{Name: "EL CRUCERO", A0: 0.348, Location: ll(11.9906, -86.3100)},
	{Name: "SAN RAFAEL DEL SUR", A0: 0.332, Location: ll(11.8467, -86.4386)},
	{Name: "MASAYA", A0: 0.342, Location: ll(11.9744, -86.0942)},
	{Name: "NINDIRI", A0: 0.345, Location: ll(12.0036, -86.1214)},
	{Name: "GRANADA", A0: 0.318, Location: ll(11.9344, -85.9560)},
	{Name: "NANDAIME", A0: 0.296, Location: ll(11.7572, -86.0528)},
	{Name: "JINOTEPE", A0: 0.312, Location: ll(11.8486, -86.1997)},
	{Name: "DIRIAMBA", A0: 0.316, Location: ll(11.8581, -86.2392)},
	{Name: "RIVAS", A0: 0.298, Location: ll(11.4372, -85.8261)},
	{Name: "SAN JUAN DEL SUR", A0: 0.305, Location: ll(11.2528, -85.8703)},
	{Name: "LEON", A0: 0.335, Location: ll(12.4378, -86.8780)},
	{Name: "NAGAROTE", A0: 0.340, Location: ll(12.2658, -86.5650)},
	{Name: "LA PAZ CENTRO", A0: 0.338, Location: ll(12.3400, -86.6756)},
	{Name: "CHINANDEGA", A0: 0.326, Location: ll(12.6294, -87.1311)},
	{Name: "CORINTO", A0: 0.330, Location: ll(12.4825, -87.1733)},
	{Name: "EL VIEJO", A0: 0.322, Location: ll(12.6631, -87.1664)},
	{Name: "SOMOTILLO", A0: 0.262, Location: ll(13.0431, -86.9058)},
	{Name: "ESTELI", A0: 0.214, Location: ll(13.0919, -86.3539)},
	{Name: "MATAGALPA", A0: 0.205, Location: ll(12.9256, -85.9175)},
	{Name: "JINOTEGA", A0: 0.188, Location: ll(13.0910, -86.0023)},
	{Name: "SOMOTO", A0: 0.196, Location: ll(13.4814, -86.5831)},
	{Name: "OCOTAL", A0: 0.192, Location: ll(13.6322, -86.4756)},
	{Name: "BOACO", A0: 0.226, Location: ll(12.4722, -85.6586)},
	{Name: "JUIGALPA", A0: 0.208, Location: ll(12.1064, -85.3656)},
	{Name: "SAN CARLOS", A0: 0.176, Location: ll(11.1236, -84.7800)},
	{Name: "BLUEFIELDS", A0: 0.122, Location: ll(12.0137, -83.7635)},
	{Name: "PUERTO CABEZAS", A0: 0.110, Location: ll(14.0349, -83.3880)},
	{Name: "SIUNA", A0: 0.138, Location: ll(13.7333, -84.7833)},
	{Name: "EL RAMA", A0: 0.146, Location: ll(12.1600, -84.2186)},
}

var defaultVs30 = []Vs30Site{
	{Name: "UNI RUPAP", Vs30: 382},
	{Name: "UCA", Vs30: 421},
	{Name: "INETER", Vs30: 352},
	{Name: "ENEL CENTRAL", Vs30: 298},
	{Name: "MERCADO ORIENTAL", Vs30: 246},
	{Name: "LAS COLINAS", Vs30: 618},
	{Name: "AEROPUERTO", Vs30: 405},
	{Name: "CARRETERA SUR KM 7", Vs30: 517},
	{Name: "VILLA FONTANA", Vs30: 463},
	{Name: "BELLO HORIZONTE", Vs30: 287},
	{Name: "ASAMBLEA NACIONAL", Vs30: 311},
	{Name: "COSTA DEL LAGO", Vs30: 176},
}

var defaultSystems = map[Category][]System{
	CategoryBearingWall: {
		{Name: "Muros de cortante especiales de concreto reforzado", R: 5, Omega: 2.5, Cd: 5},
		{Name: "Muros de cortante ordinarios de concreto reforzado", R: 4, Omega: 2.5, Cd: 4},
		{Name: "Muros de cortante especiales de mampostería reforzada", R: 5, Omega: 2.5, Cd: 3.5},
		{Name: "Muros de cortante intermedios de mampostería reforzada", R: 3.5, Omega: 2.5, Cd: 2.25},
		{Name: "Muros de marco ligero de madera", R: 6.5, Omega: 3, Cd: 4},
	},
	CategoryStructuralWall: {
		{Name: "Marcos de acero con arriostramiento excéntrico", R: 8, Omega: 2, Cd: 4},
		{Name: "Marcos especiales de acero con arriostramiento concéntrico", R: 6, Omega: 2, Cd: 5},
		{Name: "Marcos ordinarios de acero con arriostramiento concéntrico", R: 3.25, Omega: 2, Cd: 3.25},
		{Name: "Muros de cortante especiales de concreto reforzado", R: 6, Omega: 2.5, Cd: 5},
		{Name: "Muros de cortante ordinarios de concreto reforzado", R: 5, Omega: 2.5, Cd: 4.5},
	},
	CategoryMomentFrame: {
		{Name: "Marcos especiales de acero a momento", R: 8, Omega: 3, Cd: 5.5},
		{Name: "Marcos intermedios de acero a momento", R: 4.5, Omega: 3, Cd: 4},
		{Name: "Marcos ordinarios de acero a momento", R: 3.5, Omega: 3, Cd: 3},
		{Name: "Marcos especiales de concreto reforzado a momento", R: 8, Omega: 3, Cd: 5.5},
		{Name: "Marcos intermedios de concreto reforzado a momento", R: 5, Omega: 3, Cd: 4.5},
		{Name: "Marcos ordinarios de concreto reforzado a momento", R: 3, Omega: 3, Cd: 2.5},
	},
	CategoryDualSpecial: {
		{Name: "Muros de cortante especiales de concreto reforzado", R: 7, Omega: 2.5, Cd: 5.5},
		{Name: "Marcos de acero con arriostramiento excéntrico", R: 8, Omega: 2.5, Cd: 4},
		{Name: "Marcos especiales de acero con arriostramiento concéntrico", R: 7, Omega: 2.5, Cd: 5.5},
	},
	CategoryDualIntermediate: {
		{Name: "Marcos especiales de acero con arriostramiento concéntrico", R: 6, Omega: 2.5, Cd: 5},
		{Name: "Muros de cortante especiales de concreto reforzado", R: 6.5, Omega: 2.5, Cd: 5},
		{Name: "Muros de cortante ordinarios de concreto reforzado", R: 5.5, Omega: 2.5, Cd: 4.5},
	},
	CategoryCantilever: {
		{Name: "Marcos especiales de acero en voladizo", R: 2.5, Omega: 1.25, Cd: 2.5},
		{Name: "Marcos especiales de concreto reforzado en voladizo", R: 2.5, Omega: 1.25, Cd: 2.5},
		{Name: "Marcos ordinarios de concreto reforzado en voladizo", R: 1, Omega: 1.25, Cd: 1},
		{Name: "Sistemas de acero no detallados específicamente para resistencia sísmica", R: 3, Omega: 3, Cd: 3},
	},
}

// Default returns the built-in tables.
func Default() *Tables {
	t, err := New(defaultSites, defaultVs30, defaultSystems)
	if err != nil {
		panic("refdata: invalid built-in tables: " + err.Error())
	}
	return t
}
