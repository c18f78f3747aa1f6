package baseenc

// emojiCatalog is the raw list of candidate emoji. Not every entry survives
// the validity filter in EmojiAlphabet.
var emojiCatalog = [...]string{
	"\u2600", "\u2601", "\u2602", "\u2603", "\u2614", "\u2615", "\u26A1", "\u26C4",
	"\u2728", "\u2764", "\U0001F300", "\U0001F301", "\U0001F302", "\U0001F303", "\U0001F304", "\U0001F305",
	"\U0001F306", "\U0001F307", "\U0001F308", "\U0001F309", "\U0001F30A", "\U0001F30B", "\U0001F30C", "\U0001F30D",
	"\U0001F30E", "\U0001F30F", "\U0001F310", "\U0001F311", "\U0001F312", "\U0001F313", "\U0001F314", "\U0001F315",
	"\U0001F316", "\U0001F317", "\U0001F318", "\U0001F319", "\U0001F31A", "\U0001F31B", "\U0001F31C", "\U0001F31D",
	"\U0001F31E", "\U0001F31F", "\U0001F320", "\U0001F321", "\U0001F32D", "\U0001F32E", "\U0001F32F", "\U0001F330",
	"\U0001F331", "\U0001F332", "\U0001F333", "\U0001F334", "\U0001F335", "\U0001F336", "\U0001F337", "\U0001F338",
	"\U0001F339", "\U0001F33A", "\U0001F33B", "\U0001F33C", "\U0001F33D", "\U0001F33E", "\U0001F33F", "\U0001F340",
	"\U0001F341", "\U0001F342", "\U0001F343", "\U0001F344", "\U0001F345", "\U0001F346", "\U0001F347", "\U0001F348",
	"\U0001F349", "\U0001F34A", "\U0001F34B", "\U0001F34C", "\U0001F34D", "\U0001F34E", "\U0001F34F", "\U0001F350",
	"\U0001F351", "\U0001F352", "\U0001F353", "\U0001F354", "\U0001F355", "\U0001F356", "\U0001F357", "\U0001F358",
	"\U0001F359", "\U0001F35A", "\U0001F35B", "\U0001F35C", "\U0001F35D", "\U0001F35E", "\U0001F35F", "\U0001F360",
	"\U0001F361", "\U0001F362", "\U0001F363", "\U0001F364", "\U0001F365", "\U0001F366", "\U0001F367", "\U0001F368",
	"\U0001F369", "\U0001F36A", "\U0001F36B", "\U0001F36C", "\U0001F36D", "\U0001F36E", "\U0001F36F", "\U0001F370",
	"\U0001F371", "\U0001F372", "\U0001F373", "\U0001F374", "\U0001F375", "\U0001F376", "\U0001F377", "\U0001F378",
	"\U0001F379", "\U0001F37A", "\U0001F37B", "\U0001F37C", "\U0001F37D", "\U0001F380", "\U0001F381", "\U0001F382",
	"\U0001F383", "\U0001F384", "\U0001F385", "\U0001F386", "\U0001F387", "\U0001F388", "\U0001F389", "\U0001F38A",
	"\U0001F38B", "\U0001F38C", "\U0001F38D", "\U0001F38E", "\U0001F38F", "\U0001F390", "\U0001F391", "\U0001F392",
	"\U0001F393", "\U0001F3A0", "\U0001F3A1", "\U0001F3A2", "\U0001F3A3", "\U0001F3A4", "\U0001F3A5", "\U0001F3A6",
	"\U0001F3A7", "\U0001F3A8", "\U0001F3A9", "\U0001F3AA", "\U0001F3AB", "\U0001F3AC", "\U0001F3AD", "\U0001F3AE",
	"\U0001F3AF", "\U0001F3B0", "\U0001F3B1", "\U0001F3B2", "\U0001F3B3", "\U0001F3B4", "\U0001F3B5", "\U0001F3B6",
	"\U0001F3B7", "\U0001F3B8", "\U0001F3B9", "\U0001F3BA", "\U0001F3BB", "\U0001F3BC", "\U0001F3BD", "\U0001F3BE",
	"\U0001F3BF", "\U0001F3C0", "\U0001F3C1", "\U0001F3C2", "\U0001F3C3", "\U0001F3C4", "\U0001F3C5", "\U0001F3C6",
	"\U0001F3C7", "\U0001F3C8", "\U0001F3C9", "\U0001F3CA", "\U0001F3E0", "\U0001F3E1", "\U0001F3E2", "\U0001F3E3",
	"\U0001F3E4", "\U0001F3E5", "\U0001F3E6", "\U0001F3E7", "\U0001F3E8", "\U0001F3E9", "\U0001F3EA", "\U0001F3EB",
	"\U0001F3EC", "\U0001F3ED", "\U0001F3EE", "\U0001F3EF", "\U0001F3F0", "\U0001F400", "\U0001F401", "\U0001F402",
	"\U0001F403", "\U0001F404", "\U0001F405", "\U0001F406", "\U0001F407", "\U0001F408", "\U0001F409", "\U0001F40A",
	"\U0001F40B", "\U0001F40C", "\U0001F40D", "\U0001F40E", "\U0001F40F", "\U0001F410", "\U0001F411", "\U0001F412",
	"\U0001F413", "\U0001F414", "\U0001F415", "\U0001F416", "\U0001F417", "\U0001F418", "\U0001F419", "\U0001F41A",
	"\U0001F41B", "\U0001F41C", "\U0001F41D", "\U0001F41E", "\U0001F41F", "\U0001F420", "\U0001F421", "\U0001F422",
	"\U0001F423", "\U0001F424", "\U0001F425", "\U0001F426", "\U0001F427", "\U0001F428", "\U0001F429", "\U0001F42A",
	"\U0001F42B", "\U0001F42C", "\U0001F42D", "\U0001F42E", "\U0001F42F", "\U0001F430", "\U0001F431", "\U0001F432",
	"\U0001F433", "\U0001F434", "\U0001F435", "\U0001F436", "\U0001F437", "\U0001F438", "\U0001F439", "\U0001F43A",
	"\U0001F43B", "\U0001F43C", "\U0001F43D", "\U0001F43E", "\U0001F43F", "\U0001F440", "\U0001F441", "\U0001F442",
	"\U0001F443", "\U0001F444", "\U0001F445", "\U0001F446", "\U0001F447", "\U0001F448", "\U0001F449", "\U0001F44A",
	"\U0001F44B", "\U0001F44C", "\U0001F44D", "\U0001F44E", "\U0001F44F", "\U0001F450", "\U0001F451", "\U0001F452",
	"\U0001F453", "\U0001F454", "\U0001F455", "\U0001F456", "\U0001F457", "\U0001F458", "\U0001F459", "\U0001F45A",
	"\U0001F45B", "\U0001F45C", "\U0001F45D", "\U0001F45E", "\U0001F45F", "\U0001F460", "\U0001F461", "\U0001F462",
	"\U0001F463", "\U0001F464", "\U0001F465", "\U0001F466", "\U0001F467", "\U0001F468", "\U0001F469", "\U0001F46A",
	"\U0001F46B", "\U0001F46C", "\U0001F46D", "\U0001F46E", "\U0001F46F", "\U0001F470", "\U0001F471", "\U0001F472",
	"\U0001F473", "\U0001F474", "\U0001F475", "\U0001F476", "\U0001F477", "\U0001F478", "\U0001F479", "\U0001F47A",
	"\U0001F47B", "\U0001F47C", "\U0001F47D", "\U0001F47E", "\U0001F47F", "\U0001F480", "\U0001F481", "\U0001F482",
	"\U0001F483", "\U0001F484", "\U0001F485", "\U0001F486", "\U0001F487", "\U0001F488", "\U0001F489", "\U0001F48A",
	"\U0001F48B", "\U0001F48C", "\U0001F48D", "\U0001F48E", "\U0001F48F", "\U0001F490", "\U0001F491", "\U0001F492",
	"\U0001F493", "\U0001F494", "\U0001F495", "\U0001F496", "\U0001F497", "\U0001F498", "\U0001F499", "\U0001F49A",
	"\U0001F49B", "\U0001F49C", "\U0001F49D", "\U0001F49E", "\U0001F49F", "\U0001F4A0", "\U0001F4A1", "\U0001F4A2",
	"\U0001F4A3", "\U0001F4A4", "\U0001F4A5", "\U0001F4A6", "\U0001F4A7", "\U0001F4A8", "\U0001F4A9", "\U0001F4AA",
	"\U0001F4AB", "\U0001F4AC", "\U0001F4AD", "\U0001F4AE", "\U0001F4AF", "\U0001F4B0", "\U0001F4B1", "\U0001F4B2",
	"\U0001F4B3", "\U0001F4B4", "\U0001F4B5", "\U0001F4B6", "\U0001F4B7", "\U0001F4B8", "\U0001F4B9", "\U0001F4BA",
	"\U0001F4BB", "\U0001F4BC", "\U0001F4BD", "\U0001F4BE", "\U0001F4BF", "\U0001F4C0", "\U0001F4C1", "\U0001F4C2",
	"\U0001F4C3", "\U0001F4C4", "\U0001F4C5", "\U0001F4C6", "\U0001F4C7", "\U0001F4C8", "\U0001F4C9", "\U0001F4CA",
	"\U0001F4CB", "\U0001F4CC", "\U0001F4CD", "\U0001F4CE", "\U0001F4CF", "\U0001F4D0", "\U0001F4D1", "\U0001F4D2",
	"\U0001F4D3", "\U0001F4D4", "\U0001F4D5", "\U0001F4D6", "\U0001F4D7", "\U0001F4D8", "\U0001F4D9", "\U0001F4DA",
	"\U0001F4DB", "\U0001F4DC", "\U0001F4DD", "\U0001F4DE", "\U0001F4DF", "\U0001F4E0", "\U0001F4E1", "\U0001F4E2",
	"\U0001F4E3", "\U0001F4E4", "\U0001F4E5", "\U0001F4E6", "\U0001F4E7", "\U0001F4E8", "\U0001F4E9", "\U0001F4EA",
	"\U0001F4EB", "\U0001F4EC", "\U0001F4ED", "\U0001F4EE", "\U0001F4EF", "\U0001F4F0", "\U0001F4F1", "\U0001F4F2",
	"\U0001F4F3", "\U0001F4F4", "\U0001F4F5", "\U0001F4F6", "\U0001F4F7", "\U0001F4F8", "\U0001F4F9", "\U0001F4FA",
	"\U0001F4FB", "\U0001F4FC", "\U0001F5FB", "\U0001F5FC", "\U0001F5FD", "\U0001F5FE", "\U0001F5FF", "\U0001F600",
	"\U0001F601", "\U0001F602", "\U0001F603", "\U0001F604", "\U0001F605", "\U0001F606", "\U0001F607", "\U0001F608",
	"\U0001F609", "\U0001F60A", "\U0001F60B", "\U0001F60C", "\U0001F60D", "\U0001F60E", "\U0001F60F", "\U0001F610",
	"\U0001F611", "\U0001F612", "\U0001F613", "\U0001F614", "\U0001F615", "\U0001F616", "\U0001F617", "\U0001F618",
	"\U0001F619", "\U0001F61A", "\U0001F61B", "\U0001F61C", "\U0001F61D", "\U0001F61E", "\U0001F61F", "\U0001F620",
	"\U0001F621", "\U0001F622", "\U0001F623", "\U0001F624", "\U0001F625", "\U0001F626", "\U0001F627", "\U0001F628",
	"\U0001F629", "\U0001F62A", "\U0001F62B", "\U0001F62C", "\U0001F62D", "\U0001F62E", "\U0001F62F", "\U0001F630",
	"\U0001F631", "\U0001F632", "\U0001F633", "\U0001F634", "\U0001F635", "\U0001F636", "\U0001F637", "\U0001F638",
	"\U0001F639", "\U0001F63A", "\U0001F63B", "\U0001F63C", "\U0001F63D", "\U0001F63E", "\U0001F63F", "\U0001F640",
	"\U0001F641", "\U0001F642", "\U0001F643", "\U0001F644", "\U0001F645", "\U0001F646", "\U0001F647", "\U0001F648",
	"\U0001F649", "\U0001F64A", "\U0001F64B", "\U0001F64C", "\U0001F64D", "\U0001F64E", "\U0001F64F", "\U0001F680",
	"\U0001F681", "\U0001F682", "\U0001F683", "\U0001F684", "\U0001F685", "\U0001F686", "\U0001F687", "\U0001F688",
	"\U0001F689", "\U0001F68A", "\U0001F68B", "\U0001F68C", "\U0001F68D", "\U0001F68E", "\U0001F68F", "\U0001F690",
	"\U0001F691", "\U0001F692", "\U0001F693", "\U0001F694", "\U0001F695", "\U0001F696", "\U0001F697", "\U0001F698",
	"\U0001F699", "\U0001F69A", "\U0001F69B", "\U0001F69C", "\U0001F69D", "\U0001F69E", "\U0001F69F", "\U0001F6A0",
	"\U0001F6A1", "\U0001F6A2", "\U0001F6A3", "\U0001F6A4", "\U0001F6A5", "\U0001F6A6", "\U0001F6A7", "\U0001F6A8",
	"\U0001F6A9", "\U0001F6AA", "\U0001F6AB", "\U0001F6AC", "\U0001F6AD", "\U0001F6AE", "\U0001F6AF", "\U0001F6B0",
	"\U0001F6B1", "\U0001F6B2", "\U0001F6B3", "\U0001F6B4", "\U0001F6B5", "\U0001F6B6", "\U0001F6B7", "\U0001F6B8",
	"\U0001F6B9", "\U0001F6BA", "\U0001F6BB", "\U0001F6BC", "\U0001F6BD", "\U0001F6BE", "\U0001F6BF", "\U0001F6C0",
	"\U0001F6C1", "\U0001F6C2", "\U0001F6C3", "\U0001F6C4", "\U0001F6C5", "\U0001F90D", "\U0001F90E", "\U0001F90F",
	"\U0001F910", "\U0001F911", "\U0001F912", "\U0001F913", "\U0001F914", "\U0001F915", "\U0001F916", "\U0001F917",
	"\U0001F918", "\U0001F919", "\U0001F91A", "\U0001F91B", "\U0001F91C", "\U0001F91D", "\U0001F91E", "\U0001F91F",
	"\U0001F920", "\U0001F921", "\U0001F922", "\U0001F923", "\U0001F924", "\U0001F925", "\U0001F926", "\U0001F927",
	"\U0001F928", "\U0001F929", "\U0001F92A", "\U0001F92B", "\U0001F92C", "\U0001F92D", "\U0001F92E", "\U0001F92F",
	"\U0001F930", "\U0001F931", "\U0001F932", "\U0001F933", "\U0001F934", "\U0001F935", "\U0001F936", "\U0001F937",
	"\U0001F938", "\U0001F939", "\U0001F93A", "\U0001F93C", "\U0001F93D", "\U0001F93E", "\U0001F93F", "\U0001F940",
	"\U0001F941", "\U0001F942", "\U0001F943", "\U0001F944", "\U0001F945", "\U0001F947", "\U0001F948", "\U0001F949",
	"\U0001F94A", "\U0001F94B", "\U0001F94C", "\U0001F94D", "\U0001F94E", "\U0001F94F", "\U0001F950", "\U0001F951",
	"\U0001F952", "\U0001F953", "\U0001F954", "\U0001F955", "\U0001F956", "\U0001F957", "\U0001F958", "\U0001F959",
	"\U0001F95A", "\U0001F95B", "\U0001F95C", "\U0001F95D", "\U0001F95E", "\U0001F95F", "\U0001F960", "\U0001F961",
	"\U0001F962", "\U0001F963", "\U0001F964", "\U0001F965", "\U0001F966", "\U0001F967", "\U0001F968", "\U0001F969",
	"\U0001F96A", "\U0001F96B", "\U0001F96C", "\U0001F96D", "\U0001F96E", "\U0001F96F", "\U0001F970", "\U0001F971",
	"\U0001F972", "\U0001F973", "\U0001F974", "\U0001F975", "\U0001F976", "\U0001F977", "\U0001F978", "\U0001F979",
	"\U0001F97A", "\U0001F97B", "\U0001F97C", "\U0001F97D", "\U0001F97E", "\U0001F97F", "\U0001F980", "\U0001F981",
	"\U0001F982", "\U0001F983", "\U0001F984", "\U0001F985", "\U0001F986", "\U0001F987", "\U0001F988", "\U0001F989",
	"\U0001F98A", "\U0001F98B", "\U0001F98C", "\U0001F98D", "\U0001F98E", "\U0001F98F", "\U0001F990", "\U0001F991",
	"\U0001F992", "\U0001F993", "\U0001F994", "\U0001F995", "\U0001F996", "\U0001F997", "\U0001F998", "\U0001F999",
	"\U0001F99A", "\U0001F99B", "\U0001F99C", "\U0001F99D", "\U0001F99E", "\U0001F99F", "\U0001F9A0", "\U0001F9A1",
	"\U0001F9A2", "\U0001F9A3", "\U0001F9A4", "\U0001F9A5", "\U0001F9A6", "\U0001F9A7", "\U0001F9A8", "\U0001F9A9",
	"\U0001F9AA", "\U0001F9AB", "\U0001F9AC", "\U0001F9AD", "\U0001F9AE", "\U0001F9AF", "\U0001F9B0", "\U0001F9B1",
	"\U0001F9B2", "\U0001F9B3", "\U0001F9B4", "\U0001F9B5", "\U0001F9B6", "\U0001F9B7", "\U0001F9B8", "\U0001F9B9",
	"\U0001F9BA", "\U0001F9BB", "\U0001F9BC", "\U0001F9BD", "\U0001F9BE", "\U0001F9BF", "\U0001F9C0", "\U0001F9C1",
	"\U0001F9C2", "\U0001F9C3", "\U0001F9C4", "\U0001F9C5", "\U0001F9C6", "\U0001F9C7", "\U0001F9C8", "\U0001F9C9",
	"\U0001F9CA", "\U0001F9CB", "\U0001F9CC", "\U0001F9CD", "\U0001F9CE", "\U0001F9CF", "\U0001F9D0", "\U0001F9D1",
	"\U0001F9D2", "\U0001F9D3", "\U0001F9D4", "\U0001F9D5", "\U0001F9D6", "\U0001F9D7", "\U0001F9D8", "\U0001F9D9",
	"\U0001F9DA", "\U0001F9DB", "\U0001F9DC", "\U0001F9DD", "\U0001F9DE", "\U0001F9DF", "\U0001F9E0", "\U0001F9E1",
	"\U0001F9E2", "\U0001F9E3", "\U0001F9E4", "\U0001F9E5", "\U0001F9E6", "\U0001F9E7", "\U0001F9E8", "\U0001F9E9",
	"\U0001F9EA", "\U0001F9EB", "\U0001F9EC", "\U0001F9ED", "\U0001F9EE", "\U0001F9EF", "\U0001F9F0", "\U0001F9F1",
	"\U0001F9F2", "\U0001F9F3", "\U0001F9F4", "\U0001F9F5", "\U0001F9F6", "\U0001F9F7", "\U0001F9F8", "\U0001F9F9",
	"\U0001F9FA", "\U0001F9FB", "\U0001F9FC", "\U0001F9FD", "\U0001F9FE", "\U0001F9FF", "\U0001F1E6\U0001F1FF", "\U0001F1E7\U0001F1FC",
	"\U0001F1E9\U0001F1EA", "\U0001F1EB\U0001F1F7", "\U0001F1EF\U0001F1F5", "\U0001F1F0\U0001F1EA", "\U0001F1F3\U0001F1F4", "\U0001F1F5\U0001F1EA", "\U0001F1F8\U0001F1EA", "\U0001F1FA\U0001F1FE",
	"\U0001F44D\U0001F3FB", "\U0001F44D\U0001F3FD", "\U0001F44D\U0001F3FF", "\U0001F44B\U0001F3FB", "\U0001F44B\U0001F3FD", "\U0001F44B\U0001F3FF", "\U0001F64B\U0001F3FB", "\U0001F64B\U0001F3FD",
	"\U0001F64B\U0001F3FF", "\U0001F6B4\U0001F3FB", "\U0001F6B4\U0001F3FD", "\U0001F6B4\U0001F3FF", "\U0001F468\u200D\U0001F4BB", "\U0001F469\u200D\U0001F52C", "\U0001F468\u200D\U0001F3A4", "\U0001F469\u200D\U0001F680",
	"\U0001F9D1\u200D\U0001F373",
}
