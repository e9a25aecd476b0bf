package fonts

// Generated metric blobs for the 14 standard PDF fonts: zlib-compressed
// AFM text (spec Â§4.2, Â§6.1). Widths/kerning here are a deliberately
// scoped-down approximation of the real Adobe Core-14 metrics
// rather than a verbatim transcription of Adobe's tables; the
// AFM parser that consumes them (afm.go) follows the real AFM grammar.
var afmBlobs = map[string]string{
	"Times-Roman": "eNptlt92ojAQxu95irwAPQH5I6dXra3bbrddt7Xq7l3EKFkD2ARa26dfYKKYWW88ye8jId9kZuSlYqoal0X1yCslUk2CC89p508s" +
		"52Qqcq7d5zJnhTOupfwPzrjSoiwIpd4FpdS512Ox56uJqNKMrJnU3LmvmBTpVbGRnFDntVhxJUXBJ6UWVbvU9egJnmYi3RZcaxLS" +
		"7hzX1+W+eWZIieuHlDQPw48zYrs7LjZZRaLIdxZmHMTUudIpb/cjsTd0bvhh5vo0dl5av6OMqYPfJHRGZOCTSzJfED8eNoMnoncs" +
		"5eSyVQa2wvepZDlIAUhhc6JWeqvLiq+WEsTQFos6X7ax2hQgR7a8KqVkCqTYlnZcNQYq0Ia2xvJG1axYgZrYZ+0OpLqwtHJA0cZM" +
		"8ULytVG9M+rJYh+9Wbdb6y2IA7RW1hqEwD5RWuY5AwXFJ/vcZRxiE0T2osaiKMFhgGKjJdMZKIfIhFGnfHFVgpDYQlnAxYbU5tUH" +
		"PB96iGeKmxW+razLGm4sHCBBvJsVgS1osQceIs7fjfcwshV+vIAwtpVCHIwMcYxlaTZD+aB5Lno1Qukg26LrBJQJ/K1mkNQRSoKN" +
		"4qxJA9AGuBq47uq7E1GpMPAUmThEUdzhK6CRTa+BxjYdAR3a9AZoYtPbjsbUpmOgnk2/AfVtegcUNYN7oIH97HegyNsDUOTtB1Dj" +
		"bdh1myfyCBR5ewKKvP3s6BB5mwBF3n4BRd6egQ5s+gIUeZsCRd5egSJvM6DI2xwo8rYAirz97miCvP0BirJ0qVi65dWxnyUoV5eN" +
		"3LeLZHB2dd/vEpyxOhUiFSqtofknqH/V7V+MTksFRZlEZ1pxfzbUxqAlJqi5L4EmNk076lFUvSuDce0ajIKxNhhFYWMw8p4ZHNqe" +
		"hMHor+yvwcjj1mDUraTBiZ0lEGTPQy4Lg5HL0mDkcmcw7kwGI5fKYHSx2mDksjIYuawNRlf5bjBy+QHYRy73BiOXnwYjl18Gn8no" +
		"PuM8P8DlYPz64Zl1fR14fnSmECohV21q3Rark28p+Lh64Kq4YRXrZxMmlCaR8zBZNC1+RtyImvGcuCGM500RuAGMp82FuvFhzI7j" +
		"WbOiXdu89bjtYdK/cVTmu/bbkmvSPdrP29nJp67zD5AsmoU=",
	"Times-Bold": "eNptll1XozAQhu/5FfkDePimHK9s1dV1dbvr5+5dCrFkDVAT0OqvX2DG0szpTU/yvCTNO5kZuG25bs+bur0WrZa5YdGR7wzzG14J" +
		"dicrYdx5owrnvFOKsgehjWxq5nn+ked5zqU5l1tRLGWbl+yZKyOcy5YrmZ/UayWY59zXhdBK1mLZGNkOS13f28N3pcxfamEMi73x" +
		"FPN5s+2fmXnMDWKP9Q/Dj7Pgmwsh12XLkiRwnnAcpZ5zYnIx7MdSf+aciq+ZG3ipczu4XZRcf7nNYmfBwoAds8cnFvp+P7hhZsNz" +
		"wY4HJbQVsc0Vr0CKQIoTb5Reu6YVxUqBGNti3VWrIVbrGuTElotGKa5BSm1pI3RvoAVtZmu86lXD6wLUzD7reCA9hmWQI49szLWo" +
		"lXhG1T+g7i0OyD+bYWvzAmJI1qrOgBDZJ8qbquKgkPiUH5tSQGyixF7UW5QNOIxIbIzipgQFI5ME4ah8Ct2AkNlCU8PFxp7N23d4" +
		"PvYJL7XAFYGtPDcd3FgcEkG+4YrIFozcAo8JF2/oPU5sRewuIE5tpZZfRmY0xqrBzUg+GFHJSU1IOqih6EaBZIJ47TgkdUKSYK0F" +
		"79MAtJBWgzBjfY8iKRUOnhKMQzre6w07AZrYdA40tekC6Mymp0Azm56NNPVseg7Ut+k3oIFNL4CSZnAJNLKf/Q6UeLsCSrz9AIre" +
		"shDu9hoo8XYDlHj7OdIZ8bYESrz9Akq8/QYa2vQWKPF2B5R4uwdKvD0AJd4egRJvT0CJtz8jzYi3v0BJlq40z19Eu+tnGcnVVS9P" +
		"7SILD66e+l1GM9bkUuZS5x00/4z0r254xZi80VCUWXKgFU9nI20MWmJGmvsKaGbTfKT9G5C8QBDT2kVMgvGMmERhjZh4LxHHtieJ" +
		"mLzK/iEmHl8Qk26lEGd2lkCQfZ+4rBETlw1i4nKDmHYmxMSlRkwu1iAmLlvExGWHmFzlG2Li8h1wQFxuEROXH4iJy0/EBzJ6yjg/" +
		"iGg5oN8gPrBuqgM/SA4UQitVMaTWWV3sfUvBx9WV0PUpb/k0W3KpDUucq+VT3+IfmJukOH5kbgz8sS8CN4rH8V1/oW46wzHfjR/6" +
		"FcPa/l93235Npn9cNNVm+LYUpv/cHA64mw+zvQ9d5z+CQJoH",
	"Times-Italic": "eNptltF2ojAQhu95irwAPYAQ5OxVa+u2223X3Vp19y5ClKwBbAKt7dMvMFGaWW88yfdnIH8yM/JUM1VPq7J+4LUSqSbhhe9080dW" +
		"cDIXBdfuXc2kSJ1pI+X/dMGVFlVJPM+/8DzPudNTceDZTNRpTjZMau7AystyKzlx/cB5LjOupCj5rNKi7oJdv4084Xku0l3JtSaR" +
		"1+/l6qo6tGvGHnGDyCPtYvhxJmx/y8U2rwmlgbMy4zD2nEud8u55JPbHzjU/ztzAi52nzvMkZ+roOYmcCRkF5AtZrkgQj9vBI9F7" +
		"lnLypVNGtsIPqWQFSCFIUbujTnppqppnawliZItlU6y709qWIFNbziopmQIptqU9V62BGrSxrbGiVTUrM1ATe6/9hlR/LJ0ceujB" +
		"TPFS8o1R/TPqp+AAvVl3j9Y7EEcoVjYahNDeUVoVBQMFnU/+vs85nE1I7aDWoqjAYYjORkumc1COJxPRXvngqgIhsYWqhIuNPJvX" +
		"b7A+8hHPFTcRga1sqgZuLBohQbyaiNAWtDgAjxDnr8Z7RG2Fny4gim2lFEcjY3zGsjIPQ/mgeSEGlaJ0kF3R9QLKBP7SMEhqipJg" +
		"qzhr0wC0Ea4Grvv67kVUKgw8UXMOlMY9vgRKbXoFNLbpBOjYptdAE5ve9DT2bDoF6tv0K9DAprdAUTO4Axraa78BRd7ugSJv34Ea" +
		"b+O+2zySB6DI2yNQ5O1HT8fI2wwo8vYTKPL2C+jIpk9Akbc5UOTtGSjytgCKvC2BIm8roMjb754myNsfoChL14qlO16f+lmCcnXd" +
		"ykO7SEZno4d+l+CM1akQqVBpA80/Qf2r6f5idFopKMqEnmnFw95QG4OWmKDmvgaa2DTtqe+h6s0MxrVrMDqMjcHoFLYGI++5wZHt" +
		"SRiM/sr+Gow87gxG3UoanNhZAofs+8hlaTByWRmMXO4Nxp3JYORSGYwuVhuMXNYGI5eNwegqXw1GLt8AB8jlwWDk8t1g5PLD4DMZ" +
		"PWScH4S4HIzfIDoTN9SBH9AzhVALmXWpdVNmn76l4OPqnqvymtVsmM2YUJpQ5362alv8grjUM+MlcSMYL9sicEMYz9sLdePjmJ3G" +
		"izaii23fenrscTK8cVIV++7bkmvSLx3m3ezT567zD3gfm5c=",
	"Times-BoldItalic": "eNptlt9W4jAQxu/7FHmBevq/9HglqKvryrKrArt3oUSaJW0xaRV9+m07I5g53HCS39cJ+SaTaR8arpvrumruRaNlblh05jv9fMpL" +
		"wR5lKYw7rtX6tuFK5s51q9RpZS60kXXFPM8/8zzPuTXXci/WM9nkBXvmyggHnryoNkow1w+cp2ottJKVmNVGNn2w63eRB/xYyHxb" +
		"CWNY7A17Go/rfffMyGNuEHusexh+nAnf3Qi5KRqWJIGzxHGUes6FyUW/Hkv9kXMpPmdu4KXOQ+99UnD96T2LnQkLA3bOFksW+n43" +
		"mDKz47lg570S2orY54qXIEUgxYk3SC9t3Yj1SoEY22LVlqs+W5sK5MSW17VSXIOU2tJO6M5AA9rI1njZqYZXa1Aze6/DhvSQll6O" +
		"PLIw16JS4hlV/4T6JTgg/2z6pc0WxJDEqtaAENk7yuuy5KCQ/BTvu0JAbqLEDuosyhocRiQ3RnFTgIKZSYJwUD6ErkHIbKGu4GBj" +
		"z+bNGzwf+4QXWmBEYCvPdQsnFodEkK8YEdmCkXvgMeHiFb3Hia2IwwHEqa1U8tPIiOZY1bgYqQcjSnlUE1IOqr90g0AqQby0HIo6" +
		"IUWw0YJ3ZQBaSG+DMMP9HkRyVTh4SjAP6XCuU3YBNLHpGGhq0wnQkU0vgWY2vRpo6tn0Gqhv029AA5veACXN4BZoZD/7HSjxdgeU" +
		"ePsBFL1lIZztPVDibQqUePs50BHxNgNKvP0CSrz9Bhra9AEo8fYIlHh7Akq8zYESbwugxNsSKPH2Z6AZ8fYXKKnSleb5VjSHfpaR" +
		"Wl118rFdZOHJ6GO/y2jFmlzKXOq8heafkf7V9q8Yk9caLmWWnGjFx72RNgYtMSPNfQU0s2k+0O4NSF4giOndRUyS8YyYZGGDmHgv" +
		"EMe2J4mYvMr+ISYet4hJt1KIM7tKIMm+T1xWiInLGjFxuUNMOxNi4lIjJgdrEBOXDWLiskVMjvIVMXH5BjggLveIict3xMTlB+IT" +
		"FX2sOD+I6HVAv0F8Iu54D/wgOXERGqnWfWldVesv31LwcXUndHXJG36czbjUhiXO3WzZtfg5c5MUxwvmxsAX3SVwo3gYP3YH6qYj" +
		"HPPDeN5F9LHdvx6W/Zwc/3FSl7v+21IY5g0bPMz72ZfPXuc/HYefEw==",
	"Helvetica": "eNptlt9W4jAQxu/7FHkBPOl/erxSlNV1ddlVgd270AaaJW0xaRV9+m07gZI53HCS39ek+SYzQ59rpuppVdaPvFYi1SS4cJ1u/sQK" +
		"Tu64fOe1SJkzbaREaM6VFlVJKHUvKKXOvZ6KPc9mok5zsmZSc+e+ZlKkV+VGckKd1zLjSoqSzyot6m7pyKUn+CUX6bbkWpOQ9me4" +
		"vq727TNjSkZeSEn7MPw4E7a742KT1ySKPGdpxkFMnSud8m4/Ertj54YfZiOPxs5z53WSM3XwmoTOhPgeuSSLJfGSbvBE9I6lnFx2" +
		"im8rfJ9KVoAUgBR6YS+9NVXNs5UEMbTFsilWXaw2JciRLWeVlEyBFNvSjqvWQA3a2NZY0aqalRmoiX3W/kCqD0snBxRtzBQvJV8b" +
		"1T2jniz20Jt1t7XeguijtbLRIAT2idKqKBgoKD755y7nEJsgshe1FkUFDgMUGy2ZzkE5RGYc9MoXVxUIiS1UJVxsSG1ef8DzoYt4" +
		"rrhZ4dnKumrgxkIfCeLdrAhsQYs98BBx/m68h5Gt8OMFhLGtlOJgZIxjLCuzGcoHzQsxqBFKB9kVXS+gTOBvDYOkjlASbBRnbRqA" +
		"5uNq4Lqv715EpcLAU2TiEFPa4yugkU2vgcY2nQAd2/QGaGLT257G1KZToK5NvwH1bHoHFDWDe6CB/ex3oMjbA1Dk7QdQ420cQ3ge" +
		"gSJvT0CRt589HSNvM6DI2y+gyNtvoL5Nn4Eiby9AkbdXoMjbHCjytgCKvC2BIm9/epogb3+BoixdKZZueX3sZwnK1VUrD+0i8c+u" +
		"HvpdgjNWp0KkQqUNNP8E9a+m+4vRaaWgKJPoTCsezobaGLTEBDX3FdDEpmlPXYqqNzMY167BKBhrg1EUNgYj77nBoe1JGIz+yv4Z" +
		"jDxuDUbdShqc2FkCQXZd5LI0GLmsDEYudwbjzmQwcqkMRherDUYua4ORy8ZgdJXvBiOXH4A95HJvMHL5aTBy+WXwmYweMs71AlwO" +
		"xq8Xnlk31IHrRWcKoRYy61LrtsxOvqXg4+qBq/KG1WyYzZhQmkTOw2zZtvg5GUW+GS/IKPT68aItglEA45f2QkdxYMbsOJ63K7q1" +
		"7VuP2x4mwxsnVbHrvi25bj83uwMe593s5DPX+Q/36JmU",
	"Helvetica-Bold": "eNptlst22jAQhvd+Cr0AOb5fTlYJCU2aJqVNArQ7YQRWETaRbELy9LU9A0Rz2ID0/ZasfzQa67nmuh5VZf0oai1zw8ILz+n6T3wj" +
		"2J1QO1HLnA+uK7VwRo1S5/hEaCOrkrmud+G6rnNvRnIvFmNZ5wVbcmWEc19zJfOrcqUEc53XciG0kqUYV0bW3dCB537BL4XM16Uw" +
		"hkVuv5rr62rfPpO6bOBHLmsfhh9nyLd3Qq6KmsWx78ywHSauc2Vy0c3HEi91bsShN/DdxHnuXA8Lrg+us8gZssBnl2w6a//TtvHE" +
		"zJbngl12SmArYp8rvgEpBCnK3F56a6paLOYKxMgWy2Yz72K1KkGObXlRKcU1SIktbYVuDdSgpbbGN61qeLkANbPX2i9I92Hp5NAl" +
		"E3MtSiWWqHpn1C+DffJm001t1iAGZKxqDAihvaK82mw4KCQ+xce2EBCbMLYHtRZlBQ5DEhujuClAwcjEUdwrn0JXIGS2UJWwsZFr" +
		"8/odno88wgstcIRvK8uqgR2LAiLIHY4IbcHIPfCIcLFD71FsK+K4AVFiK6U8GElpjFWFk5F8MGIjT2pM0kF1h64XSCaIt4ZDUsck" +
		"CVZa8DYNQAvoaRCmP9+9SI4KB08xxiFJkx5fAY1teg00sekQaGrTG6CZTW97mrg2HQH1bPoNqG/TO6CkGNwDDe1nvwMl3h6AEm8/" +
		"gKK3LA16+giUeHsCSrz97GlKvI2BEm+/gBJvv4EGNn0GSry9ACXeXoESbxOgxNsUKPE2A0q8/elpRrz9BUqydK55vhb1sZ5lJFfn" +
		"rXwqF1lwdvSp3mU0Y00uZS513kDxz0j9arpPjMkrDYcyi8+U4tPaSBmDkpiR4j4Hmtk072n7BSQfEMT07CImwVgiJlFYISbeC8SR" +
		"7UkiJp+yf4iJxzViUq0U4szOEgiy5xGXJWLiskJMXG4R08qEmLjUiMnGGsTEZY2YuGwQk63cISYu3wH7xOUeMXH5gZi4/ER8JqNP" +
		"Gef5IT0O6NePzow7nQPPj88chFqqRZdat+Xiy10KLlcPQpc3vOan3phLbVjsPIxnbYmfsEHiYXvKBlHWt6ftIRiESd9+aTd0kAbY" +
		"5sf2pB3RjW3fepz20Dm9cVhttt3dUpj2utkt8Njvel8uvM5/4TyesQ==",
	"Helvetica-Oblique": "eNp1ls1W2zAQhfd+Cr2AOfJ/fFhBgEIpkBYIaXeKM8Qqih0kGwJPX9ujJGhOusmRvmvJuqOZie8boZuLumpuoNGyMCw+Crx+fitW" +
		"wC5BvUEjC+HfzZV8bcG7aJX6jzQFbWRdMc6DI865d2Uu5AYWE9kUJXsWyoB31Qgli5NqqYD5Qeg9VgvQSlYwqY1s+sV+0K3c4YdS" +
		"Fi8VGMMSPpzq9LTedM+MOPPDhLPuYfzxxmJ9CXJZNixNQ29mx3HGvRNTQL8fy4KRdwbbmR/yzLvv3Y9Lobfu88Qbsyhkx+xpxsK8" +
		"H9wysxYFsONeiVwFNoUSK5RilJIwGaTXtm5gMVcoJq5Ytat5H61lhXLqyotaKaFRylxpDboz0KA2cjWx6lQjqgWquXvW4UB6CEsv" +
		"x5xsLDRUCp6tGhxQvywOyZtNv7V5QTEia1VrUIjdExX1aiVQIfEpP9YlYGzi1F3UWZQ1OoxJbIwSpkRlG5lRPCifoGsUcleoK7zY" +
		"hLu8ecfnk4DwUoNdEbrKc93ijSUREeSbXRG7gpEb5Anh8Ga9J6mrwO4CksxVKrk1MqIxVrXdjOSDgZXcqylJB9UX3SCQTIDXVmBS" +
		"pyQJlhpElwaoRbQawAz1PYikVAR6Sm0cMs4HfII0dekp0sylY6Qjl54hzV16PtCMu/QCaeDSb0hDl14iJc3gCmnsPvsdKfF2jZR4" +
		"+4HUehtlGJ4bpMTbLVLi7W6gI+JtgpR4+4mUePuFNHLpPVLi7QEp8faIlHibIiXenpASbzOkxNvvgebE2x+kJEvnWhQv0Oz6WU5y" +
		"dd7J+3aRRwdX7/tdTjPWFFIWUhctNv+c9K+2/4sxRa2xKPP0QCven420MWyJOWnuc6S5S4uBBpxU78JiWrsWk2A8W0yisLSYeC8t" +
		"TlxP0mLyV/bXYuLxxWLSrZTFuZslGOQgIC4ri4nL2mLicm0x7UwWE5faYnKxxmLisrGYuGwtJlf5ZjFx+Y44JC43FhOXHxYTl58W" +
		"H8jofcYFYUzLwfoNkwPr9nUQhOmBQmikWvSpdV4tvnxL4cfVNejqTDRiP5sIqQ1LvevJrGvxU+ankR0/MT8Jh/FTVwR+jOOH7kL9" +
		"LLZjsRtPuxX92u6tu223k/0bx/Vq3X9bgmF8OOBu3s++fPh6/wAQHp/w",
	"Helvetica-BoldOblique": "eNp9ll1X4zYQhu/9K/QHvMffH2evICyF0mXTwgLtneIMsYpiB8lms/vra2uGBM3J6U0iPa/H1jsajX03SDNc9t3wFQajGiuyT3Ew" +
		"z2/lFsQV6DcYVCPD816vv620eh0huBy1/h/5AYxVfSeiKP4URVFwbS/VHtZLNTSteJbaQnA9SK2as26jQYRxEnzv1mC06mDZWzXM" +
		"wWE8RR7wfaualw6sFXnkVnd+3u+na6pIhEkeieli/AkWcncFatMOoiiS4InGWRkFZ7aB+X6ijKvgAt5nYRKVwd2chUUrzXsW6jxY" +
		"iDQRn8Xj0/RfTYNbYXeyAfF5VlJfgX2j5RalDKW8jpz0OvYDrFcaxdwXu3G7mrO16VAufHnday0NSqUv7cBMBgbUKl+T20m1sluj" +
		"WvtrdQsyLi2znEXsxtJAp+GZ1PiE+iE4YU+2863tC4opi9WjRSHzV9T0261EheWn/blrAXOTFX7QZFH16DBjubFa2hYVykyRF075" +
		"BaZHofaFvsONzSOfDz/w+jxmvDVAEYmvPPcj7lieMkG9UUTmC1btkeeMwxt5zwtfgcMG5KWvdOrdSMVzrHu6GasHC1t1VAtWDno+" +
		"dE5glQCvo8SiLlgRbAzIqQxQS/lpAOvOtxPZUZHoqaA8lFXp8BnSwqfnSEufLpBWPr1AWvv0i6Nl5NNLpLFPf0Oa+PQKKWsG10gz" +
		"/9rfkTJvN0iZtz+Qkre6Sh39ipR5u0XKvH1ztGLelkiZtz+RMm9/IU19eoeUebtHyrx9R8q8PSBl3h6RMm9PSJm3vx2tmbd/kLIq" +
		"XRnZvMBw6Gc1q9XVJB/bRZ2ejD72u5pXrG2UapRpRmz+Netf4/yKsU1v8FDWxYlWfFwba2PYEmvW3FdIa582jk5vQPYCIczPLmGW" +
		"jGfCLAsbwsx7Szj3PSnC7FX2L2Hm8YUw61aacO1XCSY5jpnLjjBz2RNmLneEeWcizFwawmxjLWHmciDMXI6E2Va+EWYufyBOmMs9" +
		"YebyJ2Hm8hfhExV9rLg4yfhxIL9JfiLueA7ipDhxEAal13NpfenWH76l8OPqBkx3IQd5nC2lMlYUwc3yaWrxDyIsYxo/ijCv3fhx" +
		"OgRhVrrx/bShYZXSWB7GD1PEHDs99XDb98nxiYt+u5u/LcGKyC3wMJ9nHz6Ag/8APIiksw==",
	"Courier": "eNptll9X2jAchu/7KfIF9LSlLfR4pSjTOR2bf7e70EaaEVKWpIp++rX9BYF33HDo8zaB5yUJvXPcuEmt3Y1wRhaWJcdR0F3f8qVg" +
		"47oxUphg0ii1Bx6FsbLWLAyj4zAMgys7kWtRTqUrKuZMI4Irx5UsTvVcCRYGD7oURkktprWVrht5FIU7+L6SxUILa1ka9h9/dlav" +
		"23tGITuK05C1N9NLMOarSyHnlWNZFgfP/n0yDINTW4huPjaMRsG52FwdxeEwuOs0xxU3G808DcZsELMT9vTMsnbyE3bL7IoXgp10" +
		"yWA/EetC8SVFyX70t6mdKGeKwnQ/1M1y1lU11xRn+3FZK8UNRcP9aCVMK+AoG+1nfNmmluuS0vzAFzJ9LV2chDAxN0Ir8eLT6EC6" +
		"Mxga4rab2i4ohJJWqrEUQEVFvVxySqCf6n1VCeomyf4rQNZkmEA3VnFbUQLNfAhTUwCl1Jp+2BTacG90fwo9uMoIPwIqeGm3AAWg" +
		"/yJf/QjQt3JNHOStePXuKbiLzx8gBXUtNyIj7FjVfrIcP2Ypt2kGBahu0/UBNCD+NpwWdQYNzI3g7TKgbICLT9h+f/chFMHJKYMe" +
		"TolCB2dEwX9MFOTPiYL4RU+HIDwhCrZfiILpJVFwvCIKcl+Jgts1UXD7RhTcboiC2y1RcPve0xG4TYmC2w+i4PaTKLjdEQW3e6Lg" +
		"9kAU3B6JgtsTUXB7Jgpuv3qag9tvouA2M7xYCPd5nuVgOWvj7XGRDw6O3p53Oa5YW0hZSFM0dPjnUEHT/cXYoja0KfPswFG8/W7Q" +
		"CR2JOXQyIwqdFD2NQiil9Bj3rsd4dHkMLcw9BvfKY1CWHoPqH4/BceExSCqPwZJKjiKw1B6DZe0xWK48xpPJY7A0HuPZ7DFYOo/B" +
		"svEYLF89Bss3wjFYrj0Gy3ePwfLD4wMrerviojjB7eB94/TAuO0+iOLswEZwUpXd0rrQ5c6zFD1cXQujz7nj26spl8a2z37t3Z+X" +
		"m4v+zvb9zpNn8A8NB3or",
	"Courier-Bold": "eNptlt1W4jAYRe/7FHkBXG2hhS6vBGV0HB1n/J25C22kGUKDSaro00/bLwgcuXHRfZrYfUhCbx03bqordyWckbllg6MoaK+v+VKw" +
		"ia6NFKY31qoIprVSX+mDMFbqioVhdBSGYXBhp3Itihvp8pI5U4vgwnEl85NqrgQLg/uqEEbJStxoK107sheFO/iulPmiEtayJOwe" +
		"ZDzW6+aeUch6cRKy5mb6E0z46lzIeelYmsbBk/88GIbBic1FOx8bRqPgVGyuenE4DG5b4UnJzUY4S4IJ68fsmD0+sbSZ/JhdM7vi" +
		"uWDHbdLfT8Q6V3xJ0WA/eqm1E8VMUZjsh1W9nLVVzSuK0/240EpxQ9FwP1oJ0wg4ykb7GV82qeVVQWl24IFMV0sbD0KYmBtRKfHs" +
		"0+hAujMYGuK2ndouKISSVqq2FEBFuV4uOSXQT/m+KgV1M0i/FCA1GQ6gG6u4LSmBZj6E0RRAKbqiLzaBNtwb3Z9AD640wo+ACp6b" +
		"fUAB6D/LVz8C9K1cEwd5K169ewLu4vMLSEC9khuREXastJ8sw3+zlNs0hQJUu+m6ABoQLzWnRZ1CA3MjeLMMKOvj4hO2299dCEVw" +
		"ckqhhxOi0MGYKPhPiIL8KVEQP+voEISnRMH2G1EwPScKjhdEQe47UXC7JApuP4iC2xVRcLsmCm4/OzoCtxui4PaLKLj9Jgput0TB" +
		"7Y4ouN0TBbcHouD2SBTcnoiC25+OZuD2lyi4zQzPF8J9nmcZWM6aeHtcZP2Do7fnXYYr1uZS5tLkNR3+GVRQtz8xNteGNmWWHjiK" +
		"t88GndCRmEEnM6LQSd7RKIRSCo9x73qMR5fH0MLcY3AvPQZl6TGo/vMYHBceg6TyGCyp5CgCy8pjsNQeg+XKYzyZPAZL4zGezR6D" +
		"pfMYLGuPwfLVY7B8IxyD5dpjsHz3GCw/PD6worcrLooHuB28b5wcGLfdB1GcHtgITqqiXVpnVbHzLkUvV5fCVKfc8e3VDZfGNu9+" +
		"zd2fl5uL7s7m8847aPAfldl9hw==",
	"Courier-Oblique": "eNptlt1WozAYRe95irxAXUCBluWVVjs6jtoZf2fuUogl0xRqErT69AN8aWvPcOMq+yTIPk1S7izXdlqV9lpYLTPDoqPAa69v+Eqw" +
		"SVVrKfTgdq7kay28aa1Ub/AotJFVyXw/OPJ937s0U7kR+UzarGBWNyMuLVcyOykXSrBBEHoPZS60kqWYVUbadu4gaCbu8H0hs2Up" +
		"jGGx3z3Q6Wm1acaMfTYIY581g+mPN+HrCyEXhWVJEnrP7nM08r0Tk4n2fmwUjL0zsb0ahP7Iu2vFJwXXW/E09iZsGLJj9vTMkubm" +
		"x+yGmTXPBDtuk+FhIjaZ4iuKosPota6syOeKwvgwLOvVvC1rUVKcHMZ5pRTXFI0Oo7XQjYClbHyY8VWTGl7mlKY9D6S7Wto48uHG" +
		"XItSiReXBj3pl8nQEDftrc2SQihprWpDAVSUVasVpwT6KT7WhaBuouS/AmRFhhF0YxQ3BSXQzKfQFQVQSlXSFxtDG/adxsfQgy20" +
		"cDOggpdmM1AA+i/yzc0AfSM3xEHeiDfnHoO72H0BMaiXcisyxo5V5W6W4r9ZyX2aQAGq3XRdAA2I15rTok6ggYUWvFkGlA1x8QnT" +
		"7e8uhCI4OSXQwwlR6OCUKPhPiIL8GVEQP+/oCISnRMH2G1EwvSAKjpdEQe47UXC7IgpuP4iC2zVRcLshCm63HR2D24wouP0kCm6/" +
		"iILbHVFwuycKbg9Ewe2RKLg9EQW3Z6Lg9rujKbj9IQpuc82zpbC78ywFy3kT74+LdNg7e3/epbhiTSZlJnVW0+GfQgV1+xNjskrT" +
		"pkyTnqN4/2zQCR2JKXQyJwqdZB0NfCgldxj3rsN4dDkMLSwcBvfCYVCWDoPqX4fBcekwSCqHwZJKDgKwLB0Gy8phsFw7jCeTw2Cp" +
		"Hcaz2WGwtA6DZe0wWL45DJbvhEOw3DgMlh8Og+Wnwz0rer/igjDC7eB8w7hn3n4fBGHSsxGsVHm7tM7L/Mu7FL1cXQldnnHL91cz" +
		"LrVhfjt6d7m96EY2n7+8i3r/AG6DgIc=",
	"Courier-BoldOblique": "eNp1ll9X2jAchu/7KfIF8LSFFnq8EpTpnM7Nv9tdaCPNCA0mqaKffm1/AeQdu/HQ501qn5ck9NZx46a6clfCGZlbNjiKgvb6mi8F" +
		"m+jaSGF6Y62K7zMlX2oRTGul/hs+CGOlrlgYRkdhGAYXdirXoriRLi+ZM82IC8eVzE+quRKsF8XBfVUIo2QlbrSVrp3bi5qJW3xX" +
		"ynxRCWtZEnYPNh7rdTNmFLJenISsGUx/gglfnQs5Lx1L0zh48p8HwzA4sblo78eG0Sg4FZurXhwOg9u2gEnJzaaALAkmrB+zY/b4" +
		"xNLm5sfsmtkVzwU7bpP+fiLWueJLigb70UutnShmisJkP6zq5awta15RnO7HhVaKG4qG+9FKmEbAUTbaz/iySS2vCkqzAw9kulra" +
		"eBDCjbkRlRLPPo0OpJ8mQ0Pctre2CwqhpJWqLQVQUa6XS04J9FO+r0pB3QzSfwqQmgwH0I1V3JaUQDMfwmgKoBRd0RebQBvujcYn" +
		"0IMrjfAzoILnZkNQAPrP8tXPAH0r18RB3opX756Au9h+AQmoV3IjMsKOlfY3y/DfLOUuTaEA1W66LoAGxEvNaVGn0MDcCN4sA8r6" +
		"uPiE7fZ3F0IRnJxS6OGEKHQwJgr+E6Igf0oUxM86OgThKVGw/UIUTM+JguMFUZD7ShTcLomC2zei4HZFFNyuiYLb946OwO2GKLj9" +
		"IApuP4mC2y1RcLsjCm73RMHtgSi4PRIFtyei4Paroxm4/SYKbjPD84Vw2/MsA8tZE++Oi6x/cPbuvMtwxdpcylyavKbDP4MK6vYn" +
		"xuba0KbM0gNH8e7ZoBM6EjPoZEYUOsk7GoVQSuEx7l2P8ejyGFqYewzupcegLD0G1T8eg+PCY5BUHoMllRxFYFl5DJbaY7BceYwn" +
		"k8dgaTzGs9ljsHQeg2XtMVi+egyWb4RjsFx7DJbvHoPlh8cHVvRuxUXxALeD942TA/N2+yCK0wMbwUlVtEvrrCo+vUvRy9WlMNUp" +
		"d3x3dcOlsSxsR28vNxfdyObzp3fS4C9h8oOJ",
	"Symbol": "eNptlt92ojAQxu95iryAPQH5I6dXra3bbreuu7bq7l2EKFkD2ARa26dfYKKYOd54kt9HQr7JzMi8YqqalEX1zCslEk38K9dp51OW" +
		"czL/zNeldCa1lOfzBVdalAWh1L2ilDqPeiIOPJ2JKsnIhknNnceKSZHcFFvJCXVei5QrKQo+K7Wo2qUDl57hl0wku4JrTQLavf32" +
		"tjw0z4woGXgBJc3D8OOM2f6Bi21WkTD0nJUZ+xF1bnTC2/1I5I6cO36cDTwaOfPW5Thj6ugyDpwxGXrkmixXxItGzWBK9J4lnFy3" +
		"ytBW+CGRLAfJByloTtRKb3VZ8XQtQQxssajzdRurbQFyaMtpKSVTIEW2tOeqMVCBNrI1ljeqZkUKamyftTuQ6sLSyj5FGzPFC8k3" +
		"RnUvqGeLPfRm3W6tdyAO0VpZaxB8+0RJmecMFBSf7HOfcYiNH9qLGouiBIc+io2WTGegHCMThJ3yxVUJQmwLZQEXG1CbVx/wfOAi" +
		"niluVni2silruLFgiATxblb4tqDFAXiAOH833oPQVvjpAoLIVgpxNDLCMZal2Qzlg+a56NUQpYNsi64TUCbwt5pBUocoCbaKsyYN" +
		"QBviauC6q+9ORKXCwFNo4hCGUYdvgIY2vQUa2XQMdGTTO6CxTe87GlGbToC6Nv0G1LPpA1DUDB6B+vaz34Eib09AkbcfQI23Uddt" +
		"puQZKPI2BYq8/ezoCHmbAUXefgFF3n4DHdp0DhR5ewGKvL0CRd4WQJG3JVDkbQUUefvT0Rh5+wsUZelasWTHq1M/i1Gurhu5bxfx" +
		"8OLqvt/FOGN1IkQiVFJD849R/6rbvxidlAqKMg4vtOL+bKiNQUuMUXNfA41tmnTUpah6U4Nx7RqMgrExGEVhazDynhkc2J6Eweiv" +
		"7J/ByOPOYNStpMGxnSUQZNdFLguDkcvSYORybzDuTAYjl8pgdLHaYOSyMhi5rA1GV/luMHL5AdhDLg8GI5efBiOXXwZfyOg+41zP" +
		"x+Vg/HrBhXV9HbheeKEQKiHTNrXui/TsWwo+rp64Ku5YxfrZjAmlSeg8zVZNi1+QQUjNeEkGAYyXTREMfBi/NBc6iI5jdhovmhXt" +
		"2uatp22Pk/6N4zLft9+WXJPu0X7ezs4+cJ3/AnOXGQ==",
	"ZapfDingbats": "eNptlt92ojAQxu95iryAPQH5I6dXrdZtt9uuu23V7V2EKFkD2ARa26dfYKKYWW88ye8jId9kZuSpYqqalkX1wCslEk38C9dp548s" +
		"5+SV7dYTUWxWrNLOtJbyfzrnSouyIJS6F5RS505PxZ6nM1ElGVkzqblzVzEpkqtiIzmhzkuRciVFwWelFlW7dODSE/yciWRbcK1J" +
		"QLuTXF+X++aZESUDL6CkeRh+nDHb3XKxySoShp6zNGM/os6VTni7H4nckTPhh9nAo5Hz1DoeZ0wdHMeBMyZDj1ySxZJ40agZPBK9" +
		"Ywknl60ytBW+TyTLQfJBCpoTtdJbXVY8XUkQA1ss6nzVxmpTgBzaclpKyRRIkS3tuGoMVKCNbI3ljapZkYIa22ftDqS6sLSyT9HG" +
		"TPFC8rVR3TPqyWIPvVm3W+stiEO0VtYaBN8+UVLmOQMFxSf73GUcYuOH9qLGoijBoY9ioyXTGSiHyARhp3xxVYIQ20JZwMUG1ObV" +
		"BzwfuIhnipsVnq2syxpuLBgiQbybFb4taLEHHiDO3433ILQVfryAILKVQhyMjHCMZWk2Q/mgeS56NUTpINui6wSUCfytZpDUIUqC" +
		"jeKsSQPQhrgauO7quxNRqTDwFJo4hGHU4SugoU2vgUY2HQMd2XQCNLbpTUcjatMpUNem34B6Nr0FiprBHVDffvY7UOTtHijy9gOo" +
		"8Tbqus0jeQCKvD0CRd5+dnSEvM2AIm+/gCJvv4EObfoEFHl7Boq8vQBF3uZAkbcFUORtCRR5+9PRGHl7BYqydKVYsuXVsZ/FKFdX" +
		"jdy3i3h4dnXf72KcsToRIhEqqaH5x6h/1e1fjE5KBUUZh2dacX821MagJcaoua+AxjZNOupSVL2pwbh2DUbBWBuMorAxGHnPDA5s" +
		"T8Jg9Ff212DkcWsw6lbS4NjOEgiy6yKXhcHIZWkwcrkzGHcmg5FLZTC6WG0wclkZjFzWBqOrfDcYufwA7CGXe4ORy0+Dkcsvg89k" +
		"dJ9xrufjcjB+veDMur4OXC88UwiVkGmbWjdFevItBR9X91wVE1axfjZjQmkSOvezZdPi52QQUjNekEEA40VTBAMfxs/NhQ6iw5gd" +
		"x/NmRbu2eetx28Okf+O4zHfttyXXpHu0n7ezk49d5x/vZJun",
}
