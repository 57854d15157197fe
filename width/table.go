package width

// ranges is the column width table. Each entry covers the code points after
// the previous entry's Last up to and including its own Last.
var ranges = []Range{
	{0x0001F, 0},
	{0x0007E, 1},
	{0x0009F, 0},
	{0x002FF, 1},
	{0x0036F, 0},
	{0x00482, 1},
	{0x00489, 0},
	{0x00590, 1},
	{0x005BD, 0},
	{0x005BE, 1},
	{0x005BF, 0},
	{0x005C0, 1},
	{0x005C2, 0},
	{0x005C3, 1},
	{0x005C5, 0},
	{0x005C6, 1},
	{0x005C7, 0},
	{0x005FF, 1},
	{0x00605, 0},
	{0x0060F, 1},
	{0x0061A, 0},
	{0x0061B, 1},
	{0x0061C, 0},
	{0x0064A, 1},
	{0x0065F, 0},
	{0x0066F, 1},
	{0x00670, 0},
	{0x006D5, 1},
	{0x006DD, 0},
	{0x006DE, 1},
	{0x006E4, 0},
	{0x006E6, 1},
	{0x006E8, 0},
	{0x006E9, 1},
	{0x006ED, 0},
	{0x0070E, 1},
	{0x0070F, 0},
	{0x00710, 1},
	{0x00711, 0},
	{0x0072F, 1},
	{0x0074A, 0},
	{0x007A5, 1},
	{0x007B0, 0},
	{0x007EA, 1},
	{0x007F3, 0},
	{0x007FC, 1},
	{0x007FD, 0},
	{0x00815, 1},
	{0x00819, 0},
	{0x0081A, 1},
	{0x00823, 0},
	{0x00824, 1},
	{0x00827, 0},
	{0x00828, 1},
	{0x0082D, 0},
	{0x00858, 1},
	{0x0085B, 0},
	{0x008D2, 1},
	{0x00903, 0},
	{0x00939, 1},
	{0x0093C, 0},
	{0x0093D, 1},
	{0x0094F, 0},
	{0x00950, 1},
	{0x00957, 0},
	{0x00961, 1},
	{0x00963, 0},
	{0x00980, 1},
	{0x00983, 0},
	{0x009BB, 1},
	{0x009BC, 0},
	{0x009BD, 1},
	{0x009C4, 0},
	{0x009C6, 1},
	{0x009C8, 0},
	{0x009CA, 1},
	{0x009CD, 0},
	{0x009D6, 1},
	{0x009D7, 0},
	{0x009E1, 1},
	{0x009E3, 0},
	{0x009FD, 1},
	{0x009FE, 0},
	{0x00A00, 1},
	{0x00A03, 0},
	{0x00A3B, 1},
	{0x00A3C, 0},
	{0x00A3D, 1},
	{0x00A42, 0},
	{0x00A46, 1},
	{0x00A48, 0},
	{0x00A4A, 1},
	{0x00A4D, 0},
	{0x00A50, 1},
	{0x00A51, 0},
	{0x00A6F, 1},
	{0x00A71, 0},
	{0x00A74, 1},
	{0x00A75, 0},
	{0x00A80, 1},
	{0x00A83, 0},
	{0x00ABB, 1},
	{0x00ABC, 0},
	{0x00ABD, 1},
	{0x00AC5, 0},
	{0x00AC6, 1},
	{0x00AC9, 0},
	{0x00ACA, 1},
	{0x00ACD, 0},
	{0x00AE1, 1},
	{0x00AE3, 0},
	{0x00AF9, 1},
	{0x00AFF, 0},
	{0x00B00, 1},
	{0x00B03, 0},
	{0x00B3B, 1},
	{0x00B3C, 0},
	{0x00B3D, 1},
	{0x00B44, 0},
	{0x00B46, 1},
	{0x00B48, 0},
	{0x00B4A, 1},
	{0x00B4D, 0},
	{0x00B54, 1},
	{0x00B57, 0},
	{0x00B61, 1},
	{0x00B63, 0},
	{0x00B81, 1},
	{0x00B82, 0},
	{0x00BBD, 1},
	{0x00BC2, 0},
	{0x00BC5, 1},
	{0x00BC8, 0},
	{0x00BC9, 1},
	{0x00BCD, 0},
	{0x00BD6, 1},
	{0x00BD7, 0},
	{0x00BFF, 1},
	{0x00C04, 0},
	{0x00C3D, 1},
	{0x00C44, 0},
	{0x00C45, 1},
	{0x00C48, 0},
	{0x00C49, 1},
	{0x00C4D, 0},
	{0x00C54, 1},
	{0x00C56, 0},
	{0x00C61, 1},
	{0x00C63, 0},
	{0x00C80, 1},
	{0x00C83, 0},
	{0x00CBB, 1},
	{0x00CBC, 0},
	{0x00CBD, 1},
	{0x00CC4, 0},
	{0x00CC5, 1},
	{0x00CC8, 0},
	{0x00CC9, 1},
	{0x00CCD, 0},
	{0x00CD4, 1},
	{0x00CD6, 0},
	{0x00CE1, 1},
	{0x00CE3, 0},
	{0x00CFF, 1},
	{0x00D03, 0},
	{0x00D3A, 1},
	{0x00D3C, 0},
	{0x00D3D, 1},
	{0x00D44, 0},
	{0x00D45, 1},
	{0x00D48, 0},
	{0x00D49, 1},
	{0x00D4D, 0},
	{0x00D56, 1},
	{0x00D57, 0},
	{0x00D61, 1},
	{0x00D63, 0},
	{0x00D80, 1},
	{0x00D83, 0},
	{0x00DC9, 1},
	{0x00DCA, 0},
	{0x00DCE, 1},
	{0x00DD4, 0},
	{0x00DD5, 1},
	{0x00DD6, 0},
	{0x00DD7, 1},
	{0x00DDF, 0},
	{0x00DF1, 1},
	{0x00DF3, 0},
	{0x00E30, 1},
	{0x00E31, 0},
	{0x00E33, 1},
	{0x00E3A, 0},
	{0x00E46, 1},
	{0x00E4E, 0},
	{0x00EB0, 1},
	{0x00EB1, 0},
	{0x00EB3, 1},
	{0x00EBC, 0},
	{0x00EC7, 1},
	{0x00ECD, 0},
	{0x00F17, 1},
	{0x00F19, 0},
	{0x00F34, 1},
	{0x00F35, 0},
	{0x00F36, 1},
	{0x00F37, 0},
	{0x00F38, 1},
	{0x00F39, 0},
	{0x00F3D, 1},
	{0x00F3F, 0},
	{0x00F70, 1},
	{0x00F84, 0},
	{0x00F85, 1},
	{0x00F87, 0},
	{0x00F8C, 1},
	{0x00F97, 0},
	{0x00F98, 1},
	{0x00FBC, 0},
	{0x00FC5, 1},
	{0x00FC6, 0},
	{0x0102A, 1},
	{0x0103E, 0},
	{0x01055, 1},
	{0x01059, 0},
	{0x0105D, 1},
	{0x01060, 0},
	{0x01061, 1},
	{0x01064, 0},
	{0x01066, 1},
	{0x0106D, 0},
	{0x01070, 1},
	{0x01074, 0},
	{0x01081, 1},
	{0x0108D, 0},
	{0x0108E, 1},
	{0x0108F, 0},
	{0x01099, 1},
	{0x0109D, 0},
	{0x010FF, 1},
	{0x0115F, 2},
	{0x0135C, 1},
	{0x0135F, 0},
	{0x01711, 1},
	{0x01714, 0},
	{0x01731, 1},
	{0x01734, 0},
	{0x01751, 1},
	{0x01753, 0},
	{0x01771, 1},
	{0x01773, 0},
	{0x017B3, 1},
	{0x017D3, 0},
	{0x017DC, 1},
	{0x017DD, 0},
	{0x0180A, 1},
	{0x0180E, 0},
	{0x01884, 1},
	{0x01886, 0},
	{0x018A8, 1},
	{0x018A9, 0},
	{0x0191F, 1},
	{0x0192B, 0},
	{0x0192F, 1},
	{0x0193B, 0},
	{0x01A16, 1},
	{0x01A1B, 0},
	{0x01A54, 1},
	{0x01A5E, 0},
	{0x01A5F, 1},
	{0x01A7C, 0},
	{0x01A7E, 1},
	{0x01A7F, 0},
	{0x01AAF, 1},
	{0x01AC0, 0},
	{0x01AFF, 1},
	{0x01B04, 0},
	{0x01B33, 1},
	{0x01B44, 0},
	{0x01B6A, 1},
	{0x01B73, 0},
	{0x01B7F, 1},
	{0x01B82, 0},
	{0x01BA0, 1},
	{0x01BAD, 0},
	{0x01BE5, 1},
	{0x01BF3, 0},
	{0x01C23, 1},
	{0x01C37, 0},
	{0x01CCF, 1},
	{0x01CD2, 0},
	{0x01CD3, 1},
	{0x01CE8, 0},
	{0x01CEC, 1},
	{0x01CED, 0},
	{0x01CF3, 1},
	{0x01CF4, 0},
	{0x01CF6, 1},
	{0x01CF9, 0},
	{0x01DBF, 1},
	{0x01DF9, 0},
	{0x01DFA, 1},
	{0x01DFF, 0},
	{0x0200A, 1},
	{0x0200F, 0},
	{0x02027, 1},
	{0x0202E, 0},
	{0x0205F, 1},
	{0x02064, 0},
	{0x02065, 1},
	{0x0206F, 0},
	{0x020CF, 1},
	{0x020F0, 0},
	{0x02319, 1},
	{0x0231B, 2},
	{0x02328, 1},
	{0x0232A, 2},
	{0x023E8, 1},
	{0x023EC, 2},
	{0x023EF, 1},
	{0x023F0, 2},
	{0x023F2, 1},
	{0x023F3, 2},
	{0x025FC, 1},
	{0x025FE, 2},
	{0x02613, 1},
	{0x02615, 2},
	{0x02647, 1},
	{0x02653, 2},
	{0x0267E, 1},
	{0x0267F, 2},
	{0x02692, 1},
	{0x02693, 2},
	{0x026A0, 1},
	{0x026A1, 2},
	{0x026A9, 1},
	{0x026AB, 2},
	{0x026BC, 1},
	{0x026BE, 2},
	{0x026C3, 1},
	{0x026C5, 2},
	{0x026CD, 1},
	{0x026CE, 2},
	{0x026D3, 1},
	{0x026D4, 2},
	{0x026E9, 1},
	{0x026EA, 2},
	{0x026F1, 1},
	{0x026F3, 2},
	{0x026F4, 1},
	{0x026F5, 2},
	{0x026F9, 1},
	{0x026FA, 2},
	{0x026FC, 1},
	{0x026FD, 2},
	{0x02704, 1},
	{0x02705, 2},
	{0x02709, 1},
	{0x0270B, 2},
	{0x02727, 1},
	{0x02728, 2},
	{0x0274B, 1},
	{0x0274C, 2},
	{0x0274D, 1},
	{0x0274E, 2},
	{0x02752, 1},
	{0x02755, 2},
	{0x02756, 1},
	{0x02757, 2},
	{0x02794, 1},
	{0x02797, 2},
	{0x027AF, 1},
	{0x027B0, 2},
	{0x027BE, 1},
	{0x027BF, 2},
	{0x02B1A, 1},
	{0x02B1C, 2},
	{0x02B4F, 1},
	{0x02B50, 2},
	{0x02B54, 1},
	{0x02B55, 2},
	{0x02CEE, 1},
	{0x02CF1, 0},
	{0x02D7E, 1},
	{0x02D7F, 0},
	{0x02DDF, 1},
	{0x02DFF, 0},
	{0x02E7F, 1},
	{0x02E99, 2},
	{0x02E9A, 1},
	{0x02EF3, 2},
	{0x02EFF, 1},
	{0x02FD5, 2},
	{0x02FEF, 1},
	{0x02FFB, 2},
	{0x02FFF, 1},
	{0x03029, 2},
	{0x0302D, 0},
	{0x0303E, 2},
	{0x03040, 1},
	{0x03096, 2},
	{0x03098, 1},
	{0x0309A, 0},
	{0x030FF, 2},
	{0x03104, 1},
	{0x0312F, 2},
	{0x03130, 1},
	{0x0318E, 2},
	{0x0318F, 1},
	{0x031E3, 2},
	{0x031EF, 1},
	{0x0321E, 2},
	{0x0321F, 1},
	{0x03247, 2},
	{0x0324F, 1},
	{0x04DBF, 2},
	{0x04DFF, 1},
	{0x09FFC, 2},
	{0x09FFF, 1},
	{0x0A48C, 2},
	{0x0A48F, 1},
	{0x0A4C6, 2},
	{0x0A66E, 1},
	{0x0A672, 0},
	{0x0A673, 1},
	{0x0A67D, 0},
	{0x0A69D, 1},
	{0x0A69F, 0},
	{0x0A6EF, 1},
	{0x0A6F1, 0},
	{0x0A801, 1},
	{0x0A802, 0},
	{0x0A805, 1},
	{0x0A806, 0},
	{0x0A80A, 1},
	{0x0A80B, 0},
	{0x0A822, 1},
	{0x0A827, 0},
	{0x0A82B, 1},
	{0x0A82C, 0},
	{0x0A87F, 1},
	{0x0A881, 0},
	{0x0A8B3, 1},
	{0x0A8C5, 0},
	{0x0A8DF, 1},
	{0x0A8F1, 0},
	{0x0A8FE, 1},
	{0x0A8FF, 0},
	{0x0A925, 1},
	{0x0A92D, 0},
	{0x0A946, 1},
	{0x0A953, 0},
	{0x0A95F, 1},
	{0x0A97C, 2},
	{0x0A97F, 1},
	{0x0A983, 0},
	{0x0A9B2, 1},
	{0x0A9C0, 0},
	{0x0A9E4, 1},
	{0x0A9E5, 0},
	{0x0AA28, 1},
	{0x0AA36, 0},
	{0x0AA42, 1},
	{0x0AA43, 0},
	{0x0AA4B, 1},
	{0x0AA4D, 0},
	{0x0AA7A, 1},
	{0x0AA7D, 0},
	{0x0AAAF, 1},
	{0x0AAB0, 0},
	{0x0AAB1, 1},
	{0x0AAB4, 0},
	{0x0AAB6, 1},
	{0x0AAB8, 0},
	{0x0AABD, 1},
	{0x0AABF, 0},
	{0x0AAC0, 1},
	{0x0AAC1, 0},
	{0x0AAEA, 1},
	{0x0AAEF, 0},
	{0x0AAF4, 1},
	{0x0AAF6, 0},
	{0x0ABE2, 1},
	{0x0ABEA, 0},
	{0x0ABEB, 1},
	{0x0ABED, 0},
	{0x0ABFF, 1},
	{0x0D7A3, 2},
	{0x0F8FF, 1},
	{0x0FA6D, 2},
	{0x0FA6F, 1},
	{0x0FAD9, 2},
	{0x0FB1D, 1},
	{0x0FB1E, 0},
	{0x0FDFF, 1},
	{0x0FE0F, 0},
	{0x0FE19, 2},
	{0x0FE1F, 1},
	{0x0FE2F, 0},
	{0x0FE52, 2},
	{0x0FE53, 1},
	{0x0FE66, 2},
	{0x0FE67, 1},
	{0x0FE6B, 2},
	{0x0FEFE, 1},
	{0x0FEFF, 0},
	{0x0FF00, 1},
	{0x0FF60, 2},
	{0x0FFDF, 1},
	{0x0FFE6, 2},
	{0x0FFF8, 1},
	{0x0FFFB, 0},
	{0x101FC, 1},
	{0x101FD, 0},
	{0x102DF, 1},
	{0x102E0, 0},
	{0x10375, 1},
	{0x1037A, 0},
	{0x10A00, 1},
	{0x10A03, 0},
	{0x10A04, 1},
	{0x10A06, 0},
	{0x10A0B, 1},
	{0x10A0F, 0},
	{0x10A37, 1},
	{0x10A3A, 0},
	{0x10A3E, 1},
	{0x10A3F, 0},
	{0x10AE4, 1},
	{0x10AE6, 0},
	{0x10D23, 1},
	{0x10D27, 0},
	{0x10EAA, 1},
	{0x10EAC, 0},
	{0x10F45, 1},
	{0x10F50, 0},
	{0x10FFF, 1},
	{0x11002, 0},
	{0x11037, 1},
	{0x11046, 0},
	{0x1107E, 1},
	{0x11082, 0},
	{0x110AF, 1},
	{0x110BA, 0},
	{0x110BC, 1},
	{0x110BD, 0},
	{0x110CC, 1},
	{0x110CD, 0},
	{0x110FF, 1},
	{0x11102, 0},
	{0x11126, 1},
	{0x11134, 0},
	{0x11144, 1},
	{0x11146, 0},
	{0x11172, 1},
	{0x11173, 0},
	{0x1117F, 1},
	{0x11182, 0},
	{0x111B2, 1},
	{0x111C0, 0},
	{0x111C8, 1},
	{0x111CC, 0},
	{0x111CD, 1},
	{0x111CF, 0},
	{0x1122B, 1},
	{0x11237, 0},
	{0x1123D, 1},
	{0x1123E, 0},
	{0x112DE, 1},
	{0x112EA, 0},
	{0x112FF, 1},
	{0x11303, 0},
	{0x1133A, 1},
	{0x1133C, 0},
	{0x1133D, 1},
	{0x11344, 0},
	{0x11346, 1},
	{0x11348, 0},
	{0x1134A, 1},
	{0x1134D, 0},
	{0x11356, 1},
	{0x11357, 0},
	{0x11361, 1},
	{0x11363, 0},
	{0x11365, 1},
	{0x1136C, 0},
	{0x1136F, 1},
	{0x11374, 0},
	{0x11434, 1},
	{0x11446, 0},
	{0x1145D, 1},
	{0x1145E, 0},
	{0x114AF, 1},
	{0x114C3, 0},
	{0x115AE, 1},
	{0x115B5, 0},
	{0x115B7, 1},
	{0x115C0, 0},
	{0x115DB, 1},
	{0x115DD, 0},
	{0x1162F, 1},
	{0x11640, 0},
	{0x116AA, 1},
	{0x116B7, 0},
	{0x1171C, 1},
	{0x1172B, 0},
	{0x1182B, 1},
	{0x1183A, 0},
	{0x1192F, 1},
	{0x11935, 0},
	{0x11936, 1},
	{0x11938, 0},
	{0x1193A, 1},
	{0x1193E, 0},
	{0x1193F, 1},
	{0x11940, 0},
	{0x11941, 1},
	{0x11943, 0},
	{0x119D0, 1},
	{0x119D7, 0},
	{0x119D9, 1},
	{0x119E0, 0},
	{0x119E3, 1},
	{0x119E4, 0},
	{0x11A00, 1},
	{0x11A0A, 0},
	{0x11A32, 1},
	{0x11A39, 0},
	{0x11A3A, 1},
	{0x11A3E, 0},
	{0x11A46, 1},
	{0x11A47, 0},
	{0x11A50, 1},
	{0x11A5B, 0},
	{0x11A89, 1},
	{0x11A99, 0},
	{0x11C2E, 1},
	{0x11C36, 0},
	{0x11C37, 1},
	{0x11C3F, 0},
	{0x11C91, 1},
	{0x11CA7, 0},
	{0x11CA8, 1},
	{0x11CB6, 0},
	{0x11D30, 1},
	{0x11D36, 0},
	{0x11D39, 1},
	{0x11D3A, 0},
	{0x11D3B, 1},
	{0x11D3D, 0},
	{0x11D3E, 1},
	{0x11D45, 0},
	{0x11D46, 1},
	{0x11D47, 0},
	{0x11D89, 1},
	{0x11D8E, 0},
	{0x11D8F, 1},
	{0x11D91, 0},
	{0x11D92, 1},
	{0x11D97, 0},
	{0x11EF2, 1},
	{0x11EF6, 0},
	{0x1342F, 1},
	{0x13438, 0},
	{0x16AEF, 1},
	{0x16AF4, 0},
	{0x16B2F, 1},
	{0x16B36, 0},
	{0x16F4E, 1},
	{0x16F4F, 0},
	{0x16F50, 1},
	{0x16F87, 0},
	{0x16F8E, 1},
	{0x16F92, 0},
	{0x16FDF, 1},
	{0x16FE3, 2},
	{0x16FE4, 0},
	{0x16FEF, 1},
	{0x16FF1, 2},
	{0x16FFF, 1},
	{0x187F7, 2},
	{0x187FF, 1},
	{0x18CD5, 2},
	{0x18CFF, 1},
	{0x18D08, 2},
	{0x1AFFF, 1},
	{0x1B11E, 2},
	{0x1B14F, 1},
	{0x1B152, 2},
	{0x1B163, 1},
	{0x1B167, 2},
	{0x1B16F, 1},
	{0x1B2FB, 2},
	{0x1BC9C, 1},
	{0x1BC9E, 0},
	{0x1BC9F, 1},
	{0x1BCA3, 0},
	{0x1D164, 1},
	{0x1D169, 0},
	{0x1D16C, 1},
	{0x1D182, 0},
	{0x1D184, 1},
	{0x1D18B, 0},
	{0x1D1A9, 1},
	{0x1D1AD, 0},
	{0x1D241, 1},
	{0x1D244, 0},
	{0x1D9FF, 1},
	{0x1DA36, 0},
	{0x1DA3A, 1},
	{0x1DA6C, 0},
	{0x1DA74, 1},
	{0x1DA75, 0},
	{0x1DA83, 1},
	{0x1DA84, 0},
	{0x1DA9A, 1},
	{0x1DA9F, 0},
	{0x1DAA0, 1},
	{0x1DAAF, 0},
	{0x1DFFF, 1},
	{0x1E006, 0},
	{0x1E007, 1},
	{0x1E018, 0},
	{0x1E01A, 1},
	{0x1E021, 0},
	{0x1E022, 1},
	{0x1E024, 0},
	{0x1E025, 1},
	{0x1E02A, 0},
	{0x1E12F, 1},
	{0x1E136, 0},
	{0x1E2EB, 1},
	{0x1E2EF, 0},
	{0x1E8CF, 1},
	{0x1E8D6, 0},
	{0x1E943, 1},
	{0x1E94A, 0},
	{0x1F003, 1},
	{0x1F004, 2},
	{0x1F0CE, 1},
	{0x1F0CF, 2},
	{0x1F18D, 1},
	{0x1F18E, 2},
	{0x1F190, 1},
	{0x1F19A, 2},
	{0x1F1FF, 1},
	{0x1F202, 2},
	{0x1F20F, 1},
	{0x1F23B, 2},
	{0x1F23F, 1},
	{0x1F248, 2},
	{0x1F24F, 1},
	{0x1F251, 2},
	{0x1F25F, 1},
	{0x1F265, 2},
	{0x1F2FF, 1},
	{0x1F320, 2},
	{0x1F32C, 1},
	{0x1F335, 2},
	{0x1F336, 1},
	{0x1F37C, 2},
	{0x1F37D, 1},
	{0x1F393, 2},
	{0x1F39F, 1},
	{0x1F3CA, 2},
	{0x1F3CE, 1},
	{0x1F3D3, 2},
	{0x1F3DF, 1},
	{0x1F3F0, 2},
	{0x1F3F3, 1},
	{0x1F3F4, 2},
	{0x1F3F7, 1},
	{0x1F43E, 2},
	{0x1F43F, 1},
	{0x1F440, 2},
	{0x1F441, 1},
	{0x1F4FC, 2},
	{0x1F4FE, 1},
	{0x1F53D, 2},
	{0x1F54A, 1},
	{0x1F54E, 2},
	{0x1F54F, 1},
	{0x1F567, 2},
	{0x1F579, 1},
	{0x1F57A, 2},
	{0x1F594, 1},
	{0x1F596, 2},
	{0x1F5A3, 1},
	{0x1F5A4, 2},
	{0x1F5FA, 1},
	{0x1F64F, 2},
	{0x1F67F, 1},
	{0x1F6C5, 2},
	{0x1F6CB, 1},
	{0x1F6CC, 2},
	{0x1F6CF, 1},
	{0x1F6D2, 2},
	{0x1F6D4, 1},
	{0x1F6D7, 2},
	{0x1F6EA, 1},
	{0x1F6EC, 2},
	{0x1F6F3, 1},
	{0x1F6FC, 2},
	{0x1F7DF, 1},
	{0x1F7EB, 2},
	{0x1F90B, 1},
	{0x1F93A, 2},
	{0x1F93B, 1},
	{0x1F945, 2},
	{0x1F946, 1},
	{0x1F978, 2},
	{0x1F979, 1},
	{0x1F9CB, 2},
	{0x1F9CC, 1},
	{0x1F9FF, 2},
	{0x1FA6F, 1},
	{0x1FA74, 2},
	{0x1FA77, 1},
	{0x1FA7A, 2},
	{0x1FA7F, 1},
	{0x1FA86, 2},
	{0x1FA8F, 1},
	{0x1FAA8, 2},
	{0x1FAAF, 1},
	{0x1FAB6, 2},
	{0x1FABF, 1},
	{0x1FAC2, 2},
	{0x1FACF, 1},
	{0x1FAD6, 2},
	{0x1FFFF, 1},
	{0x2A6DD, 2},
	{0x2A6FF, 1},
	{0x2B734, 2},
	{0x2B73F, 1},
	{0x2B81D, 2},
	{0x2B81F, 1},
	{0x2CEA1, 2},
	{0x2CEAF, 1},
	{0x2EBE0, 2},
	{0x2F7FF, 1},
	{0x2FA1D, 2},
	{0x2FFFF, 1},
	{0x3134A, 2},
	{0xE0000, 1},
	{0xE0001, 0},
	{0xE001F, 1},
	{0xE007F, 0},
	{0xE00FF, 1},
	{0xE01EF, 0},
	{0x10FFFF, 1},
}
