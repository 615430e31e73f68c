package chunker

// gearTable 是 Gear Hash 的查表常量：每个字节值映射到一个伪随机 64 位权重。
// 左移一位再加权重，单字节更新就能获得不错的雪崩效应 (Avalanche)。
//
// 【关键】这张表必须是编译期字面量，不能运行时随机生成：
// 表变了，所有历史 DataID 全部作废。任何实现要做到标识符兼容，
// 都必须带着同一张表。
var gearTable = [256]uint64{
	0x64fc7eddf858dc3c, 0x9a9497264472992e, 0xac983b978cde20f8, 0x46c9c3e43ff825e4,
	0x05c1e0d3dbdfea2a, 0x73f540772e505138, 0xda30287555206c2b, 0xc56edf75f689a383,
	0x98c402e13a9c6dd3, 0x04fef19494784865, 0x5ae33d6c9f13ada8, 0x2afb1e7deb0a2657,
	0x18b2679acfc843be, 0xea31dbe7f3cc758d, 0xe759e1329bf6dcf2, 0xae972bd7483de292,
	0xe13514bcf6ef3677, 0x93be0b0194e114c3, 0xd848cf4b4d7fe695, 0xbf9fc051facf6563,
	0xf5a277cf1746c02a, 0xb200ac57da2f411d, 0xccbe38ad1f7c9636, 0x0d39bf0e0993fec5,
	0xe537315fe3bfed64, 0xbd9a4a9d88b1c33d, 0x8f159cef14d8cd17, 0x11064491be8826ea,
	0xf8356b9b2504b0f7, 0x6a8ab1f400472365, 0x95121e1aef5816ae, 0x76e6df667016d068,
	0xda09464c86330554, 0x0a7d208f1d0bd9f0, 0x72ab57ce51a9b1e7, 0xa91c636a73cd4e22,
	0xeb104ef3da655a47, 0xb19803d89be32b81, 0x1f483df425b0007e, 0x5b0a06d23c3dea94,
	0x576b0c1ed01b35f6, 0x1366d2222b6c26ea, 0x0a630ea121ad0bc6, 0xfc72bf8a1bf7f961,
	0xe175b6b3f2b1ee4a, 0x86f1a2b9af4c1c00, 0xf42b778b17d74d2e, 0xd04bcce3dd084354,
	0x98b07fa20d246412, 0x922849b5e8d915f2, 0xcd66802634218845, 0x3cb694abc6b4550c,
	0x13b9f40839616510, 0xf4ca0872541b09ac, 0x94fe255331e50bc9, 0xe959314ea5a5b4b7,
	0xc1b0763a3745522b, 0x01142d64d86588a5, 0x8f8e3394d322b8a3, 0xa261ba7f1ecd2cab,
	0xa7c5214359c8029b, 0xf2d42e5b43554eb7, 0xa4bf8b3092ffaa91, 0x57c9e5286c53d676,
	0x3003326460713997, 0x11191c037a62b2d6, 0xb582bb3722a5867b, 0xcfb6706c792997dd,
	0x86ac3bb11bc931c1, 0x9618d3afefdde065, 0x26600046e64c2740, 0x8c635b6dacdc4d06,
	0xbe0768c5e140e33a, 0x22f8c0d2583d72d2, 0x36b88ebb9c482912, 0xff83ddf7277f867b,
	0x6394bb21fae11bad, 0x95520cd6bfa7a328, 0x5425f48b45b6a372, 0x17e4e50a69006c7d,
	0x5d12d5c47026c271, 0x2104a22e78f07125, 0x350ed361173263ac, 0x98fd194ced0abebd,
	0x45e82c8c9dc9b0d1, 0xf59c4a46c0128617, 0xe0c643cad3b97950, 0xa6e9aa5058bc29d0,
	0x9b7852340da85462, 0x6073726a4f378d08, 0x67a0866ad83d3764, 0x42690325037c5d90,
	0x22ae99fc0bbf2a9a, 0xc2893f553b52f035, 0xd94a13081659d426, 0x594c11c5bac0105a,
	0x37b76d5491c84f7e, 0xc3d9daa11a1f0cc5, 0x751fdb872a28685b, 0x246ac5a5de804ddb,
	0xdc1c698e5eda3cc1, 0xc41738a736b723d5, 0xd26357f075202456, 0x40dfee8c572dd2e1,
	0xa0c69d234d61c030, 0x7427b755771c0dfa, 0x0916849481e7b9cf, 0xad9d9aaa06218eda,
	0x29e6ea70cbcfc9db, 0xa1db1b70b3343ea1, 0xebef2fe94cd3b45f, 0xedf72c983e065245,
	0x01fc8fcb40014dcf, 0xe7fea4981a460330, 0x1a5439e9ed6c1381, 0x776a53c2bab908c2,
	0x8993e77320a974d9, 0x6948a4582f95c12a, 0xe3700e3344ae5fc7, 0xcc2f87a65fdd90d6,
	0x1a14b5a065535aa2, 0x4f66e20fb6b38d90, 0xaf750edb223a5771, 0x9b7b09c5ff325aab,
	0xeca48ca5aa814c9d, 0xc27cd70ed9a843f9, 0x8bb0ce0ad8b92091, 0xa847751302b6e303,
	0xd3c3e62b70d967b7, 0x4fa74db8acc17e3d, 0x5b633d296978dda3, 0xeb421c10c13287ed,
	0x5cd877c25820d825, 0xa4f2cc4597c6ed0b, 0x268d49ad69d0c68b, 0xda14756ff3136bdf,
	0x8ab5114e6ddebcc7, 0xeca5ef44a958f527, 0xf7c0069c1bbf7f0b, 0x4c199280680d1567,
	0xdef917bb3ec06b77, 0x14f63c682e78718d, 0x98e6aeaa83c816dc, 0x07e96b31add39f09,
	0x5ed221e32591f872, 0xee1a1317b92b12be, 0xcbeb257348f793c8, 0x3f62772c0fdcb8ff,
	0xd433587b5265ea0c, 0xb1b9ccb413381abc, 0xe93daa4af9fa7707, 0xcfdb86b94f160305,
	0x357f94b41c60789f, 0x1ef46f20c180115e, 0xec9ac43b80721df3, 0x157ec037725a1204,
	0x56495f60c43acc0b, 0xccae43ec14995819, 0xf5fe87fa7f4bf2b7, 0x98e005258183801f,
	0x1be107472780c004, 0x79b40adc1ef0a1a7, 0x616677d9846a2d70, 0x4c888973c4957dea,
	0x8a2ef0ebc997ec23, 0x021ccbe718e71ad6, 0x6d1eb5f576a6ad68, 0x65c542bcd4e6eec2,
	0xbfb294d195f2a3a3, 0x8af7cf0132bcb9bd, 0x79362a667570943e, 0x8b901e96498094e4,
	0xe4b69c5ab4ee1ece, 0xc796096a78694e29, 0x4b8ec598a1271547, 0x48e0443ee21589da,
	0x1fa19f7bf6df4752, 0x91ad9c3e7b7626a2, 0x5c0770fe9fb534bb, 0x9cfe56e83f635875,
	0xa24cc4b72cdb49fb, 0x843681809eb81bc2, 0x127847fb8b6474ab, 0x0451a554d56ae97b,
	0x540a892134c2f183, 0x0bc434d3c498eba0, 0xfe59090b81cca61a, 0x0c0a4fffad78f14a,
	0xe910b657e03e4a19, 0x2f8317e70109bec5, 0x29e8d5c5466091ee, 0x3899ac9ac3a92ca3,
	0xc6cd908de1884549, 0x54f46b26483f22a3, 0x59b96e1a79739543, 0x33bc4d3edcc3ac7d,
	0xbd81aea30c5279c5, 0xb90ebc1a2604c123, 0x9fe07d8a52e16c69, 0x39170001472076c6,
	0x0f246e4abf87e592, 0xde1cc068cf0810c3, 0x2f00a1e16a033192, 0xb006e6099431dfa4,
	0x4ff224552abbee29, 0x54ce9e5d05357923, 0xa532fac6281ca02c, 0x2c210c34d5aa0738,
	0x344155acee3b3b5f, 0x354e2e51895da7f5, 0x388f60629b51b88a, 0xc7e41ec3a5d6e8ec,
	0x9043d9b869a23022, 0x779df9ee7a619c0d, 0x4b776e8c8091c881, 0x1162d9efff3ef25f,
	0x01064671b531f672, 0x78ca00c7cc8aecc5, 0x9349edf98c92ac0c, 0xbba4f2f37c344a6e,
	0x8095c735ce9ae7cc, 0x3dbdd9bc258355dc, 0x5f810703b05a0637, 0xb66fb9d7d55bbb20,
	0xdd9852842e4e99ab, 0x2586b317962003e8, 0xa7109bcd9cbf2289, 0x4b06cae795e8215b,
	0x66dfc87388ae7c67, 0xac6a231550d37123, 0x2eefec5edbe15926, 0x8b1d7a3fee040073,
	0x2547382d2f5642ff, 0x31d785663cb73a48, 0x317ea9f1f6f408ae, 0xcda1503cdb06033e,
	0xc7aff291177bda6b, 0x6f20f84107599d5d, 0x935d4694219f8d3e, 0xda2d6755b118425a,
	0xc2faf0fd3533a593, 0x713000528b45fd75, 0xe617e41aa3c14178, 0xc4d5c8d9f42620be,
	0x2b8d351013a7666c, 0x35254151edf7e234, 0xd1c955c97016c00d, 0x9f86c531eb7fe2d5,
	0xec9b193535c61da5, 0xfc9c680e9e8b5836, 0x3c14a5ce0eae84d5, 0x441bf348b5899d07,
	0x52de29e82b3b8943, 0x695160d89950e27d, 0x0b596a35f8cc6f84, 0x4442e6a4f6e4a7c3,
}
