package pokeapi

// colorscriptNames는 PokeAPI 기본 폼 이름이 pokemon-colorscripts 이름과 다른 포켓몬입니다.
// 예: 386번은 API에서 "deoxys-normal"이지만 colorscripts에서는 "deoxys"입니다.
var colorscriptNames = map[int]string{
	29:  "nidoran-f",
	32:  "nidoran-m",
	122: "mr-mime",
	386: "deoxys",
	413: "wormadam",
	487: "giratina",
	492: "shaymin",
	550: "basculin",
	555: "darmanitan",
	641: "tornadus",
	642: "thundurus",
	645: "landorus",
	647: "keldeo",
	648: "meloetta",
	678: "meowstic",
	681: "aegislash",
	710: "pumpkaboo",
	711: "gourgeist",
	718: "zygarde",
	741: "oricorio",
	745: "lycanroc",
	746: "wishiwashi",
	774: "minior",
	778: "mimikyu",
	849: "toxtricity",
	875: "eiscue",
	876: "indeedee",
	877: "morpeko",
	892: "urshifu",
	902: "basculegion",
}

// ColorscriptName은 pokemon-colorscripts -n 에 넘길 이름을 반환합니다.
// 표에 없는 번호는 API 이름을 그대로 사용합니다 ("ho-oh", "porygon-z" 등 하이픈 포함 이름 보존).
func ColorscriptName(id int, apiName string) string {
	if name, ok := colorscriptNames[id]; ok {
		return name
	}
	return apiName
}
