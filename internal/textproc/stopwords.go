package textproc

// The comment corpus mixes Portuguese and English, so both stop-word sets
// are applied unconditionally to every token. Short words that are valid
// in one language but function words in the other are dropped either way;
// that imprecision is accepted.
//
// The lists are shipped as static data. No linguistic resources are
// downloaded at runtime.

var stopwordsEN = map[string]struct{}{
	// Pronouns
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {},
	"ourselves": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {}, "he": {}, "him": {}, "his": {}, "himself": {}, "she": {},
	"her": {}, "hers": {}, "herself": {}, "it": {}, "its": {}, "itself": {},
	"they": {}, "them": {}, "their": {}, "theirs": {}, "themselves": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "this": {}, "that": {},
	"these": {}, "those": {},
	// Verbs "to be", "to have", "to do"
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "having": {}, "do": {},
	"does": {}, "did": {}, "doing": {},
	// Articles, conjunctions, prepositions
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "if": {}, "or": {},
	"because": {}, "as": {}, "until": {}, "while": {}, "of": {}, "at": {},
	"by": {}, "for": {}, "with": {}, "about": {}, "against": {}, "between": {},
	"into": {}, "through": {}, "during": {}, "before": {}, "after": {},
	"above": {}, "below": {}, "to": {}, "from": {}, "up": {}, "down": {},
	"in": {}, "out": {}, "on": {}, "off": {}, "over": {}, "under": {},
	// Adverbs and quantifiers
	"again": {}, "further": {}, "then": {}, "once": {}, "here": {},
	"there": {}, "when": {}, "where": {}, "why": {}, "how": {}, "all": {},
	"any": {}, "both": {}, "each": {}, "few": {}, "more": {}, "most": {},
	"other": {}, "some": {}, "such": {}, "no": {}, "nor": {}, "not": {},
	"only": {}, "own": {}, "same": {}, "so": {}, "than": {}, "too": {},
	"very": {}, "just": {}, "now": {},
	// Modals and contraction stems
	"can": {}, "will": {}, "should": {}, "dont": {}, "doesnt": {},
	"didnt": {}, "isnt": {}, "arent": {}, "wasnt": {}, "werent": {},
	"wont": {}, "wouldnt": {}, "couldnt": {}, "shouldnt": {}, "cant": {},
	"aint": {}, "hasnt": {}, "havent": {}, "hadnt": {}, "mustnt": {},
	"neednt": {},
}

var stopwordsPT = map[string]struct{}{
	// Artigos, preposições e contrações
	"de": {}, "a": {}, "o": {}, "que": {}, "e": {}, "do": {}, "da": {},
	"em": {}, "um": {}, "para": {}, "com": {}, "não": {}, "uma": {},
	"os": {}, "no": {}, "se": {}, "na": {}, "por": {}, "mais": {}, "as": {},
	"dos": {}, "como": {}, "mas": {}, "ao": {}, "das": {}, "à": {}, "às": {},
	"ou": {}, "nos": {}, "nas": {}, "num": {}, "numa": {}, "pelo": {},
	"pela": {}, "pelos": {}, "pelas": {}, "até": {}, "sem": {}, "entre": {},
	"aos": {}, "sob": {}, "sobre": {},
	// Pronomes
	"ele": {}, "ela": {}, "eles": {}, "elas": {}, "eu": {}, "tu": {},
	"te": {}, "você": {}, "vocês": {}, "nós": {}, "vos": {}, "lhe": {},
	"lhes": {}, "me": {}, "meu": {}, "minha": {}, "meus": {}, "minhas": {},
	"teu": {}, "tua": {}, "teus": {}, "tuas": {}, "seu": {}, "sua": {},
	"seus": {}, "suas": {}, "nosso": {}, "nossa": {}, "nossos": {},
	"nossas": {}, "dele": {}, "dela": {}, "deles": {}, "delas": {},
	"este": {}, "esta": {}, "estes": {}, "estas": {}, "esse": {}, "essa": {},
	"esses": {}, "essas": {}, "aquele": {}, "aquela": {}, "aqueles": {},
	"aquelas": {}, "isto": {}, "isso": {}, "aquilo": {}, "qual": {},
	"quem": {},
	// Advérbios e conectivos
	"quando": {}, "muito": {}, "já": {}, "também": {}, "só": {},
	"depois": {}, "mesmo": {}, "ainda": {}, "aqui": {}, "lá": {},
	"nem": {}, "então": {}, "porque": {}, "assim": {},
	// Formas de "estar"
	"estou": {}, "está": {}, "estamos": {}, "estão": {}, "estive": {},
	"esteve": {}, "estivemos": {}, "estiveram": {}, "estava": {},
	"estávamos": {}, "estavam": {}, "esteja": {}, "estejamos": {},
	"estejam": {}, "estivesse": {}, "estivéssemos": {}, "estivessem": {},
	"estiver": {}, "estivermos": {}, "estiverem": {},
	// Formas de "haver"
	"hei": {}, "há": {}, "havemos": {}, "hão": {}, "houve": {},
	"houvemos": {}, "houveram": {}, "houvera": {}, "haja": {},
	"hajamos": {}, "hajam": {}, "houvesse": {}, "houvéssemos": {},
	"houvessem": {}, "houver": {}, "houvermos": {}, "houverem": {},
	"houverei": {}, "houverá": {}, "houveremos": {}, "houverão": {},
	"houveria": {}, "houveríamos": {}, "houveriam": {},
	// Formas de "ser"
	"sou": {}, "somos": {}, "são": {}, "era": {}, "éramos": {}, "eram": {},
	"fui": {}, "foi": {}, "fomos": {}, "foram": {}, "fora": {},
	"fôramos": {}, "seja": {}, "sejamos": {}, "sejam": {}, "fosse": {},
	"fôssemos": {}, "fossem": {}, "for": {}, "formos": {}, "forem": {},
	"serei": {}, "será": {}, "seremos": {}, "serão": {}, "seria": {},
	"seríamos": {}, "seriam": {},
	// Formas de "ter"
	"tenho": {}, "tem": {}, "temos": {}, "têm": {}, "tinha": {},
	"tínhamos": {}, "tinham": {}, "tive": {}, "teve": {}, "tivemos": {},
	"tiveram": {}, "tivera": {}, "tivéramos": {}, "tenha": {},
	"tenhamos": {}, "tenham": {}, "tivesse": {}, "tivéssemos": {},
	"tivessem": {}, "tiver": {}, "tivermos": {}, "tiverem": {},
	"terei": {}, "terá": {}, "teremos": {}, "terão": {}, "teria": {},
	"teríamos": {}, "teriam": {},
}

func isStopword(token string) bool {
	if _, ok := stopwordsPT[token]; ok {
		return true
	}
	_, ok := stopwordsEN[token]
	return ok
}
